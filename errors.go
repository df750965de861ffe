package mechdraw

import "fmt"

// ParamError reports a parameter-validation failure for a drawing
// operation. It is returned before any canvas call is made, so a failed
// operation never emits partial geometry.
type ParamError struct {
	// Op is the operation kind the parameters were supplied for.
	Op string

	// Field names the missing or invalid parameter.
	Field string

	// Reason describes the violated constraint.
	Reason string
}

func (e *ParamError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("mechdraw: %s: missing parameter %q", e.Op, e.Field)
	}
	return fmt.Sprintf("mechdraw: %s: parameter %q %s", e.Op, e.Field, e.Reason)
}

// missingParam returns a ParamError for an absent required field.
func missingParam(op, field string) error {
	return &ParamError{Op: op, Field: field}
}

// invalidParam returns a ParamError for a present but invalid field.
func invalidParam(op, field, reason string) error {
	return &ParamError{Op: op, Field: field, Reason: reason}
}

// OpError reports an operation kind outside a strategy's enumerated set.
type OpError struct {
	// Strategy is the kind of strategy the operation was issued to.
	Strategy StrategyKind

	// Op is the rejected operation kind.
	Op string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("mechdraw: unsupported operation %q for %s strategy", e.Op, e.Strategy)
}

package mechdraw

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Backend consumes a replayed document entity by entity.
//
// Begin is called once before the first entity with the source document,
// giving the backend access to the sheet, layer table, linetype table and
// text styles. End is called once after the last entity and flushes any
// buffered output.
//
// Backends that have no native dimension objects flatten dimension
// entities into lines, solids and text with FlattenDim and feed the
// result back through Dispatch.
type Backend interface {
	Begin(doc *Document) error

	Line(e *Line) error
	Circle(e *Circle) error
	Arc(e *Arc) error
	Ellipse(e *Ellipse) error
	Polyline(e *Polyline) error
	Spline(e *Spline) error
	Hatch(e *Hatch) error
	Solid(e *Solid) error
	Text(e *Text) error

	LinearDim(e *LinearDim) error
	AlignedDim(e *AlignedDim) error
	RadiusDim(e *RadiusDim) error
	DiameterDim(e *DiameterDim) error
	AngularDim(e *AngularDim) error

	End() error
}

// Dispatch routes a single entity to the matching backend method.
// It is the dispatch step of Document.Replay, exported so backends can
// re-enter it with flattened dimension primitives.
func Dispatch(b Backend, e Entity) error {
	switch v := e.(type) {
	case *Line:
		return b.Line(v)
	case *Circle:
		return b.Circle(v)
	case *Arc:
		return b.Arc(v)
	case *Ellipse:
		return b.Ellipse(v)
	case *Polyline:
		return b.Polyline(v)
	case *Spline:
		return b.Spline(v)
	case *Hatch:
		return b.Hatch(v)
	case *Solid:
		return b.Solid(v)
	case *Text:
		return b.Text(v)
	case *LinearDim:
		return b.LinearDim(v)
	case *AlignedDim:
		return b.AlignedDim(v)
	case *RadiusDim:
		return b.RadiusDim(v)
	case *DiameterDim:
		return b.DiameterDim(v)
	case *AngularDim:
		return b.AngularDim(v)
	default:
		return fmt.Errorf("mechdraw: unknown entity kind %v", e.Kind())
	}
}

// BackendFactory creates a backend writing to w.
type BackendFactory func(w io.Writer) Backend

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// RegisterBackend makes an output backend available by name, typically
// from an init function in the backend's package:
//
//	import _ "github.com/mechdraw/mechdraw/backend/dxf"
//
// It panics if the factory is nil or the name is already registered.
func RegisterBackend(name string, factory BackendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if factory == nil {
		panic("mechdraw: RegisterBackend factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("mechdraw: RegisterBackend called twice for backend " + name)
	}
	backends[name] = factory
}

// UnregisterBackend removes a backend from the registry.
// It reports whether the backend was registered.
func UnregisterBackend(name string) bool {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[name]
	delete(backends, name)
	return ok
}

// NewBackend creates a registered backend writing to w.
func NewBackend(name string, w io.Writer) (Backend, error) {
	backendsMu.RLock()
	factory, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("mechdraw: unknown backend %q (forgotten import?)", name)
	}
	return factory(w), nil
}

// MustBackend is like NewBackend but panics on error.
// Use in examples and tools where a missing backend is a programmer error.
func MustBackend(name string, w io.Writer) Backend {
	b, err := NewBackend(name, w)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	list := make([]string, 0, len(backends))
	for name := range backends {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// IsBackendRegistered reports whether a backend name is registered.
func IsBackendRegistered(name string) bool {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	_, ok := backends[name]
	return ok
}

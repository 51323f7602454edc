// Package component holds the plain data attached to entities and the typed
// handles the ecs package uses to store and query it.
//
// Each component type gets exactly one package-level handle, created with
// NewComponent, for example:
//
//	var TransformComponent = NewComponent[Transform]()
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world. Zero is never issued.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind ties a ComponentID to its Go type.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid reports whether k came from NewComponent rather than a zero value.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the value systems pass to ecs.Add, ecs.Get and the
// ForEach queries.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
	name string
}

func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{
		kind: ComponentKind[T]{id: ComponentID(lastID.Add(1))},
		name: fmt.Sprintf("%T", zero),
	}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }

// String is the component's Go type name, for log fields.
func (h ComponentHandle[T]) String() string {
	if h.name == "" {
		return "<invalid component>"
	}
	return h.name
}

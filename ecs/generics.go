package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// Add attaches or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, handle)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: add %s", component.ErrEntityNotAlive, handle)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	set := storeFor(w, handle.Kind(), false)
	if set == nil {
		return nil, false
	}
	return set.get(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	set := storeFor(w, handle.Kind(), false)
	if set == nil {
		return false
	}
	if _, ok := set.get(e); !ok {
		return false
	}
	return set.remove(e.id())
}

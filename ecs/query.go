package ecs

import "github.com/milk9111/platformer/ecs/component"

// Queries iterate over a snapshot of the first kind's entities. Entities
// destroyed or stripped by fn earlier in the same pass are skipped.

func ForEach[A any](w *World, ka component.ComponentHandle[A], fn func(Entity, *A)) {
	sa := storeFor(w, ka.Kind(), false)
	for _, e := range sa.snapshot() {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentHandle[A], kb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka.Kind(), false)
	if storeFor(w, kb.Kind(), false) == nil {
		return
	}
	for _, e := range sa.snapshot() {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentHandle[A], kb component.ComponentHandle[B], kc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka.Kind(), false)
	if storeFor(w, kb.Kind(), false) == nil || storeFor(w, kc.Kind(), false) == nil {
		return
	}
	for _, e := range sa.snapshot() {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentHandle[A], kb component.ComponentHandle[B], kc component.ComponentHandle[C], kd component.ComponentHandle[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := storeFor(w, ka.Kind(), false)
	if storeFor(w, kb.Kind(), false) == nil || storeFor(w, kc.Kind(), false) == nil || storeFor(w, kd.Kind(), false) == nil {
		return
	}
	for _, e := range sa.snapshot() {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		d, ok := Get(w, e, kd)
		if !ok {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// First returns the lowest-slot live entity holding kind.
func First[A any](w *World, ka component.ComponentHandle[A]) (Entity, bool) {
	sa := storeFor(w, ka.Kind(), false)
	if sa.len() == 0 {
		return 0, false
	}
	best := Entity(0)
	for _, e := range sa.dense {
		if !IsAlive(w, e) {
			continue
		}
		if best == 0 || e.id() < best.id() {
			best = e
		}
	}
	return best, best != 0
}

// Count reports how many live entities hold kind.
func Count[A any](w *World, ka component.ComponentHandle[A]) int {
	return storeFor(w, ka.Kind(), false).len()
}

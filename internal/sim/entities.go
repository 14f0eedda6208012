package sim

// Entities is the registry of one kind of transient object owned by a game
// instance. It is a plain slice: no locking, no reactive bookkeeping.
type Entities[T any] struct {
	items []T
}

// Spawn adds an entity.
func (e *Entities[T]) Spawn(v T) {
	e.items = append(e.items, v)
}

// Len returns the number of live entities.
func (e *Entities[T]) Len() int {
	return len(e.items)
}

// Items returns the live entities. The slice is only valid until the next
// Spawn, Update or Clear.
func (e *Entities[T]) Items() []T {
	return e.items
}

// Each calls fn for every live entity, allowing in-place mutation.
func (e *Entities[T]) Each(fn func(*T)) {
	for i := range e.items {
		fn(&e.items[i])
	}
}

// Update calls keep for every entity and removes, in the same pass, every
// entity for which keep returns false. keep may mutate the entity but must
// not Spawn into this registry. Returns the number removed.
func (e *Entities[T]) Update(keep func(*T) bool) int {
	n := 0
	for i := range e.items {
		if keep(&e.items[i]) {
			if n != i {
				e.items[n] = e.items[i]
			}
			n++
		}
	}
	removed := len(e.items) - n
	var zero T
	for i := n; i < len(e.items); i++ {
		e.items[i] = zero
	}
	e.items = e.items[:n]
	return removed
}

// Clear drops every entity.
func (e *Entities[T]) Clear() {
	var zero T
	for i := range e.items {
		e.items[i] = zero
	}
	e.items = e.items[:0]
}

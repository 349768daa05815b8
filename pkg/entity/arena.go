package entity

// Handle identifies an entity stored in an Arena. The zero Handle is never
// issued, so it can be used as "none".
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot struct {
	entity Entity
	gen    uint32
	live   bool
}

// Arena stores entities densely and hands out generation-checked handles.
// A removed handle never resolves again, even after its slot is reused.
type Arena struct {
	slots []slot
	free  []uint32
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Insert stores e and returns its handle.
func (a *Arena) Insert(e Entity) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.entity = e
		s.live = true
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{entity: e, gen: 1, live: true})
	return Handle{index: uint32(len(a.slots) - 1), gen: 1}
}

// Get returns the entity for h, or nil when h is stale or zero. The pointer
// is only valid until the next Insert.
func (a *Arena) Get(h Handle) *Entity {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return &s.entity
}

// Remove frees h. It reports false when h was already gone.
func (a *Arena) Remove(h Handle) bool {
	if a.Get(h) == nil {
		return false
	}
	s := &a.slots[h.index]
	s.live = false
	s.entity = Entity{}
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return len(a.slots) - len(a.free)
}

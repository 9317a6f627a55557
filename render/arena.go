package render

import (
	"errors"
	"fmt"
	"math"
)

// Handle is a sprite slot index
type Handle uint8

// MaxArenaSlots is the number of slots a Handle can address
const MaxArenaSlots = math.MaxUint8 + 1

var (
	ErrArenaFull    = errors.New("no free sprite slots")
	ErrNotAllocated = errors.New("entity has no sprite slot")
)

// Arena hands out the fixed pool of sprite slots, keyed by entity ID
// Entities never own their slot; release is explicit on removal
type Arena struct {
	slots []uint32 // slot -> owner id, valid when used[slot]
	used  []bool
	byID  map[uint32]Handle
	next  int
}

// NewArena creates an arena with capacity slots, clamped to [0, MaxArenaSlots]
func NewArena(capacity int) *Arena {
	capacity = max(0, min(capacity, MaxArenaSlots))
	return &Arena{
		slots: make([]uint32, capacity),
		used:  make([]bool, capacity),
		byID:  make(map[uint32]Handle, capacity),
	}
}

// Alloc returns id's slot, allocating the next free one on first call
func (a *Arena) Alloc(id uint32) (Handle, error) {
	if h, ok := a.byID[id]; ok {
		return h, nil
	}
	for i := range a.used {
		slot := (a.next + i) % len(a.used)
		if !a.used[slot] {
			a.used[slot] = true
			a.slots[slot] = id
			a.byID[id] = Handle(slot)
			a.next = (slot + 1) % len(a.used)
			return Handle(slot), nil
		}
	}
	return 0, fmt.Errorf("entity %d: %w", id, ErrArenaFull)
}

// Lookup returns id's slot if allocated
func (a *Arena) Lookup(id uint32) (Handle, bool) {
	h, ok := a.byID[id]
	return h, ok
}

// Release frees id's slot
func (a *Arena) Release(id uint32) error {
	h, ok := a.byID[id]
	if !ok {
		return fmt.Errorf("entity %d: %w", id, ErrNotAllocated)
	}
	a.used[h] = false
	delete(a.byID, id)
	return nil
}

// Owner returns the entity holding slot h
func (a *Arena) Owner(h Handle) (uint32, bool) {
	if int(h) >= len(a.used) || !a.used[h] {
		return 0, false
	}
	return a.slots[h], true
}

// Len returns the number of allocated slots
func (a *Arena) Len() int {
	return len(a.byID)
}

// Cap returns the total slot count
func (a *Arena) Cap() int {
	return len(a.used)
}

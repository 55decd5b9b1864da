package window

import (
	"sort"

	"github.com/ushitora-anqou/wsiwindow/event"
)

// touchSlots maps platform finger ids, which can be arbitrary 64-bit
// values, onto the small ids carried by touch events. A slot is held from
// the finger's first event until it is lifted.
type touchSlots struct {
	ids  map[int64]uint8
	used [256]bool
}

func newTouchSlots() *touchSlots {
	return &touchSlots{ids: map[int64]uint8{}}
}

// acquire returns the slot for id, assigning the lowest free one if id is
// new. It fails only when every slot is taken.
func (s *touchSlots) acquire(id int64) (uint8, bool) {
	if slot, ok := s.ids[id]; ok {
		return slot, true
	}
	for i := range s.used {
		if !s.used[i] {
			s.used[i] = true
			s.ids[id] = uint8(i)
			return uint8(i), true
		}
	}
	return 0, false
}

// release frees the slot held by id.
func (s *touchSlots) release(id int64) (uint8, bool) {
	slot, ok := s.ids[id]
	if !ok {
		return 0, false
	}
	delete(s.ids, id)
	s.used[slot] = false
	return slot, true
}

type touchPoint struct {
	id   int64
	x, y int
}

type touchChange struct {
	action event.MouseAction
	touchPoint
}

// diffTouches compares the touches active this tick with those of the last
// tick, recorded in prev, and returns the transitions: lifts first, in id
// order, then presses and moves in the order of current. prev is updated to
// match current.
func diffTouches(prev map[int64][2]int, current []touchPoint) []touchChange {
	var changes []touchChange

	active := make(map[int64]bool, len(current))
	for _, p := range current {
		active[p.id] = true
	}
	var lifted []int64
	for id := range prev {
		if !active[id] {
			lifted = append(lifted, id)
		}
	}
	sort.Slice(lifted, func(i, j int) bool { return lifted[i] < lifted[j] })
	for _, id := range lifted {
		pos := prev[id]
		changes = append(changes, touchChange{event.MouseUp, touchPoint{id, pos[0], pos[1]}})
		delete(prev, id)
	}

	for _, p := range current {
		pos := [2]int{p.x, p.y}
		last, known := prev[p.id]
		switch {
		case !known:
			changes = append(changes, touchChange{event.MouseDown, p})
		case last != pos:
			changes = append(changes, touchChange{event.MouseMove, p})
		}
		prev[p.id] = pos
	}
	return changes
}

package controlbar

import "github.com/samber/lo"

// NavKey is a direction-agnostic focus traversal key.
type NavKey int

const (
	NavNext NavKey = iota
	NavPrev
	NavFirst
	NavLast
)

// Direction selects the horizontal reading order for arrow-key traversal.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// navigator implements roving focus across the bar's control group.
//
// The traversal order is fixed at construction from whichever controls are
// actually present; absent controls are simply not in the sequence. The
// navigator operates only when focus is already on one of the group's
// controls and never wraps around at either end.
type navigator struct {
	order     []Control
	direction Direction
}

func newNavigator(present []Control, direction Direction) *navigator {
	order := lo.Filter(present, func(c Control, _ int) bool {
		return c != ControlNone
	})

	return &navigator{
		order:     order,
		direction: direction,
	}
}

// contains reports whether the control participates in the focus group.
func (n *navigator) contains(c Control) bool {
	return lo.Contains(n.order, c)
}

// first returns the initial focus target of the group.
func (n *navigator) first() Control {
	if len(n.order) == 0 {
		return ControlNone
	}
	return n.order[0]
}

// handleKey resolves a traversal key against the current focus position.
// It returns the control that should receive focus and whether the key was
// consumed. Keys arriving while focus is outside the group are not consumed,
// so the caller must not suppress their default behavior.
func (n *navigator) handleKey(current Control, k NavKey) (Control, bool) {
	if !n.contains(current) {
		return ControlNone, false
	}

	if n.direction == DirectionRTL {
		switch k {
		case NavNext:
			k = NavPrev
		case NavPrev:
			k = NavNext
		}
	}

	idx := lo.IndexOf(n.order, current)

	switch k {
	case NavNext:
		if idx < len(n.order)-1 {
			return n.order[idx+1], true
		}
		return current, true
	case NavPrev:
		if idx > 0 {
			return n.order[idx-1], true
		}
		return current, true
	case NavFirst:
		return n.order[0], true
	case NavLast:
		return n.order[len(n.order)-1], true
	default:
		return ControlNone, false
	}
}

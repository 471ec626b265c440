// Package schedule maps care actions to recurrence intervals and derives
// next-due dates for recurring tasks.
package schedule

import (
	"strings"
	"time"
)

// Action is a recognized recurring-task kind. Log entries carry free-text
// action strings; ParseAction classifies them, and ActionUnknown is the
// explicit "no recurrence rule" case.
type Action int

const (
	ActionUnknown Action = iota
	ActionWater
	ActionFertilize
	ActionPrune
	ActionRepot
)

// Fixed recurrence intervals per action kind.
const (
	waterInterval     = 3 * 24 * time.Hour
	fertilizeInterval = 4 * 7 * 24 * time.Hour
	pruneInterval     = 8 * 7 * 24 * time.Hour
	repotInterval     = 180 * 24 * time.Hour
)

// ParseAction classifies a free-text action string. Matching is substring
// based so variations like "watered" or "deep watering" still count.
func ParseAction(s string) Action {
	text := strings.ToLower(s)
	switch {
	case strings.Contains(text, "water"):
		return ActionWater
	case strings.Contains(text, "fertiliz"), strings.Contains(text, "fertilis"):
		return ActionFertilize
	case strings.Contains(text, "prune"), strings.Contains(text, "trim"):
		return ActionPrune
	case strings.Contains(text, "repot"):
		return ActionRepot
	default:
		return ActionUnknown
	}
}

// Interval returns the recurrence interval for an action kind.
// The second return value is false for ActionUnknown.
func (a Action) Interval() (time.Duration, bool) {
	switch a {
	case ActionWater:
		return waterInterval, true
	case ActionFertilize:
		return fertilizeInterval, true
	case ActionPrune:
		return pruneInterval, true
	case ActionRepot:
		return repotInterval, true
	default:
		return 0, false
	}
}

// String returns the canonical name of the action kind.
func (a Action) String() string {
	switch a {
	case ActionWater:
		return "water"
	case ActionFertilize:
		return "fertilize"
	case ActionPrune:
		return "prune"
	case ActionRepot:
		return "repot"
	default:
		return "unknown"
	}
}

// NextDue returns last + interval for the given free-text action, or false
// when the action has no recurrence rule.
func NextDue(last time.Time, action string) (time.Time, bool) {
	interval, ok := ParseAction(action).Interval()
	if !ok {
		return time.Time{}, false
	}
	return last.Add(interval), true
}

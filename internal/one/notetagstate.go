package one

import "onenotestore/internal/onestore"

// ActionItemType is a note tag's due-date bucket: either a raw numeric tag
// index (0-99) or one of six named buckets (100-105).
type ActionItemType struct {
	Numeric uint16
	Named   ActionItemNamed
	IsNamed bool
}

type ActionItemNamed uint8

const (
	ActionItemDueToday ActionItemNamed = iota
	ActionItemDueTomorrow
	ActionItemDueThisWeek
	ActionItemDueNextWeek
	ActionItemNoDueDate
	ActionItemCustomDueDate
)

func (n ActionItemNamed) String() string {
	switch n {
	case ActionItemDueToday:
		return "DueToday"
	case ActionItemDueTomorrow:
		return "DueTomorrow"
	case ActionItemDueThisWeek:
		return "DueThisWeek"
	case ActionItemDueNextWeek:
		return "DueNextWeek"
	case ActionItemNoDueDate:
		return "NoDueDate"
	case ActionItemCustomDueDate:
		return "CustomDueDate"
	default:
		return "Unknown"
	}
}

func parseActionItemType(raw uint16) ActionItemType {
	if raw <= 99 {
		return ActionItemType{Numeric: raw}
	}
	return ActionItemType{Named: ActionItemNamed(raw - 100), IsNamed: true}
}

// NoteTagState is a decoded action-item tag: creation/completion times,
// status flags, and the due-date bucket above.
type NoteTagState struct {
	CreatedAt   Time
	CompletedAt Time
	Completed   bool
	Disabled    bool
	TaskTag     bool
	ItemType    ActionItemType
}

const (
	actionItemStatusCompleted = 1 << 0
	actionItemStatusDisabled  = 1 << 1
	actionItemStatusTaskTag   = 1 << 2
)

func parseNoteTagState(ps onestore.PropertySet) (NoteTagState, bool) {
	raw, ok := optionalU16Type(ps, PropActionItemType)
	if !ok {
		return NoteTagState{}, false
	}

	createdAt, _ := optionalTime(ps, PropActionItemCreatedAt)
	completedAt, _ := optionalTime(ps, PropActionItemCompletedAt)
	status, _ := optionalU32(ps, PropActionItemStatus)

	return NoteTagState{
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
		Completed:   status&actionItemStatusCompleted != 0,
		Disabled:    status&actionItemStatusDisabled != 0,
		TaskTag:     status&actionItemStatusTaskTag != 0,
		ItemType:    parseActionItemType(raw),
	}, true
}

func optionalU16Type(ps onestore.PropertySet, id onestore.PropertyId) (uint16, bool) {
	v, ok := optionalU64(ps, id)
	return uint16(v), ok
}

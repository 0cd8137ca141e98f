package one

import "onenotestore/internal/onestore"

// Time is a coarse-grained (32-bit) modification timestamp; its on-disk
// unit is specific to the owning property and not resolved to a calendar
// date at this layer.
type Time uint32

// Timestamp is a 64-bit modification timestamp, used where the format
// needs more range or precision than Time provides.
type Timestamp uint64

func requireTime(ps onestore.PropertySet, id onestore.PropertyId) (Time, error) {
	v, err := requireU32(ps, id)
	return Time(v), err
}

func optionalTime(ps onestore.PropertySet, id onestore.PropertyId) (Time, bool) {
	v, ok := optionalU32(ps, id)
	return Time(v), ok
}

func requireTimestamp(ps onestore.PropertySet, id onestore.PropertyId) (Timestamp, error) {
	v, err := requireU64(ps, id)
	return Timestamp(v), err
}

func optionalTimestamp(ps onestore.PropertySet, id onestore.PropertyId) (Timestamp, bool) {
	v, ok := optionalU64(ps, id)
	return Timestamp(v), ok
}

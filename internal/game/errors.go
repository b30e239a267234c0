package game

import (
	"errors"
	"fmt"
)

// IllegalActionError reports an action the rules do not allow in the current
// state. The action is skipped; the game continues.
type IllegalActionError struct {
	Action string
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", e.Action, e.Reason)
}

func illegalAction(action, format string, args ...interface{}) error {
	return &IllegalActionError{
		Action: action,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsIllegalAction reports whether err is an IllegalActionError.
func IsIllegalAction(err error) bool {
	var iae *IllegalActionError
	return errors.As(err, &iae)
}

// CorruptZoneStateError reports a card-count mismatch across zones. This is
// the one unrecoverable error: the game that produced it must be abandoned.
type CorruptZoneStateError struct {
	Expected int
	Actual   int
	Detail   string
}

func (e *CorruptZoneStateError) Error() string {
	return fmt.Sprintf("corrupt zone state: expected %d cards across zones, counted %d (%s)",
		e.Expected, e.Actual, e.Detail)
}

// IsCorruptZoneState reports whether err is a CorruptZoneStateError.
func IsCorruptZoneState(err error) bool {
	var czs *CorruptZoneStateError
	return errors.As(err, &czs)
}

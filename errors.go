package arbor

import "errors"

var (
	// ErrEntityNotFound is returned when an entity handle no longer resolves,
	// either because the entity was removed or it never existed.
	ErrEntityNotFound = errors.New("arbor: entity not found")

	// ErrEmptyScript is returned by LoadTouchScript for a script with no steps.
	ErrEmptyScript = errors.New("arbor: touch script has no steps")

	// ErrUnknownStep is returned by LoadTouchScript for an unrecognized action.
	ErrUnknownStep = errors.New("arbor: unknown touch script action")
)

package model

import "errors"

var (
	// ErrInvalidRange is raised when a constraint has min >= max.
	ErrInvalidRange = errors.New("invalid range")
	// ErrBitfieldTooWide is raised when a bitfield does not fit its backing integer.
	ErrBitfieldTooWide = errors.New("bitfield too wide")
	// ErrSerializedSizeExceeded is raised when content outgrows a declared fixed size.
	ErrSerializedSizeExceeded = errors.New("serialized size exceeded")
	// ErrNoVariants is raised when an enum has nothing left to select.
	ErrNoVariants = errors.New("enum has no selectable variants")
	// ErrUnsupportedSchema is raised for schema constructs the engine cannot lay out.
	ErrUnsupportedSchema = errors.New("unsupported schema")
	// ErrUnknownSchema is returned when a schema name is not registered.
	ErrUnknownSchema = errors.New("unknown schema")
	// ErrReproduceMismatch is returned when a replayed payload differs from the recorded one.
	ErrReproduceMismatch = errors.New("replayed payload differs")
)

package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete means the window holds fewer bytes than the record needs.
	// The caller should buffer more input and retry from the same offset.
	ErrIncomplete = errors.New("protocol: incomplete input")

	// ErrMalformed means the bytes are present but do not fit the declared structure.
	ErrMalformed = errors.New("protocol: malformed input")
)

// Reason classifies a MalformedError.
type Reason uint8

const (
	ReasonUnknownTag     Reason = 1
	ReasonInvalidCode    Reason = 2
	ReasonTimeOutOfRange Reason = 3
	ReasonSizeMismatch   Reason = 4
)

func (r Reason) String() string {
	switch r {
	case ReasonUnknownTag:
		return "unknown tag"
	case ReasonInvalidCode:
		return "invalid code"
	case ReasonTimeOutOfRange:
		return "time out of range"
	case ReasonSizeMismatch:
		return "size mismatch"
	}
	return "unknown reason"
}

// IncompleteError reports how many bytes a decode step needed.
type IncompleteError struct {
	Field string
	Need  int
	Have  int
}

func (e *IncompleteError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("protocol: incomplete input: need %d bytes, have %d", e.Need, e.Have)
	}
	return fmt.Sprintf("protocol: incomplete input at %s: need %d bytes, have %d", e.Field, e.Need, e.Have)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// MalformedError carries enough context to diagnose a bad record without
// decoding it again. Tag is zero until the dispatcher fills it in.
type MalformedError struct {
	Reason Reason
	Tag    byte
	Field  string
	Enum   string
	Offset int
	Byte   byte
	Value  uint64
}

func (e *MalformedError) Error() string {
	switch e.Reason {
	case ReasonUnknownTag:
		return fmt.Sprintf("protocol: unknown tag %q (0x%02x)", e.Byte, e.Byte)
	case ReasonInvalidCode:
		return fmt.Sprintf("protocol: tag %q field %s: byte %q (0x%02x) at offset %d is not a valid %s",
			e.Tag, e.Field, e.Byte, e.Byte, e.Offset, e.Enum)
	case ReasonTimeOutOfRange:
		return fmt.Sprintf("protocol: tag %q field %s: value %d at offset %d is not a time of day",
			e.Tag, e.Field, e.Value, e.Offset)
	case ReasonSizeMismatch:
		return fmt.Sprintf("protocol: tag %q: consumed %d bytes, declared %d", e.Tag, e.Offset, e.Value)
	}
	return fmt.Sprintf("protocol: malformed input at offset %d", e.Offset)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

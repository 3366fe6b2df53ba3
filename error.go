package itch

import (
	"errors"
	"fmt"

	"github.com/0x5487/itch/protocol"
)

var (
	ErrIncomplete     = protocol.ErrIncomplete
	ErrMalformed      = protocol.ErrMalformed
	ErrLengthMismatch = fmt.Errorf("%w: length prefix does not match record size", ErrMalformed)
	ErrBufferFull     = errors.New("itch: record does not fit in the scanner buffer")
	ErrNoProgress     = errors.New("itch: reader returned no data repeatedly")
)

type (
	IncompleteError = protocol.IncompleteError
	MalformedError  = protocol.MalformedError
)

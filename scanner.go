package itch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/0x5487/itch/protocol"
	"github.com/rs/xid"
)

// Framing selects how records are laid out in the input stream.
type Framing uint8

const (
	// FramingRaw is a plain concatenation of records.
	FramingRaw Framing = iota
	// FramingLengthPrefixed puts a big-endian u16 record length in front of
	// every record, as in BinaryFILE captures and MoldUDP64 message blocks.
	FramingLengthPrefixed
)

func (f Framing) String() string {
	switch f {
	case FramingRaw:
		return "raw"
	case FramingLengthPrefixed:
		return "length_prefixed"
	}
	return fmt.Sprintf("Framing(%d)", uint8(f))
}

const (
	defaultBufferSize    = 64 * 1024
	defaultMaxBufferSize = 1024 * 1024
	maxEmptyReads        = 100
)

// ScannerOptions configures a Scanner. The zero value is usable.
type ScannerOptions struct {
	// BufferSize is the initial buffer size. Defaults to 64 KiB.
	BufferSize int

	// MaxBufferSize bounds buffer growth. Defaults to 1 MiB and is raised to
	// BufferSize when smaller.
	MaxBufferSize int

	Framing Framing

	// SkipKinds are decoded and validated but not delivered.
	SkipKinds []Kind
}

// Scanner reads consecutive messages from an io.Reader.
//
// Scan decodes in place from an internal buffer. When the buffered bytes end
// inside a record it reads more and decodes again from the same offset. It
// stops at the first malformed record, returning the decode error verbatim
// from Err. A Scanner is not safe for concurrent use.
type Scanner struct {
	id      xid.ID
	r       io.Reader
	framing Framing
	maxBuf  int
	skip    [kindCount]bool

	buf    []byte
	start  int
	end    int
	offset int64
	eof    bool

	msg   Message
	count uint64
	err   error
	done  bool
}

// NewScanner returns a Scanner over raw concatenated records with default options.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerWithOptions(r, ScannerOptions{})
}

// NewScannerWithOptions returns a Scanner configured by opts.
func NewScannerWithOptions(r io.Reader, opts ScannerOptions) *Scanner {
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	if opts.MaxBufferSize <= 0 {
		opts.MaxBufferSize = defaultMaxBufferSize
	}
	if opts.MaxBufferSize < opts.BufferSize {
		opts.MaxBufferSize = opts.BufferSize
	}

	s := &Scanner{
		id:      xid.New(),
		r:       r,
		framing: opts.Framing,
		maxBuf:  opts.MaxBufferSize,
		buf:     make([]byte, opts.BufferSize),
	}
	for _, k := range opts.SkipKinds {
		if k < kindCount {
			s.skip[k] = true
		}
	}
	return s
}

// ID returns the session id attached to every log record of this scanner.
func (s *Scanner) ID() string {
	return s.id.String()
}

// Scan advances to the next delivered message. It returns false at the end
// of the input or on error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	for {
		msg, n, err := s.decode(s.buf[s.start:s.end])
		switch {
		case err == nil:
			s.start += n
			s.offset += int64(n)
			if s.skip[msg.Kind()] {
				logger.Debug("skipped message", "session", s.ID(), "kind", msg.Kind().String(), "offset", s.offset-int64(n))
				continue
			}
			s.msg = msg
			s.count++
			return true

		case errors.Is(err, ErrIncomplete):
			if s.eof {
				if s.start == s.end {
					s.stop(nil)
				} else {
					s.stop(fmt.Errorf("itch: %d trailing bytes at offset %d: %w: %w", s.end-s.start, s.offset, io.ErrUnexpectedEOF, err))
				}
				return false
			}
			if ferr := s.fill(); ferr != nil {
				s.stop(ferr)
				return false
			}

		default:
			logger.Warn("malformed record", "session", s.ID(), "offset", s.offset, "error", err)
			s.stop(err)
			return false
		}
	}
}

// Message returns the message produced by the last successful Scan.
func (s *Scanner) Message() Message {
	return s.msg
}

// Err returns the error that stopped the scanner. It is nil when the input
// ended cleanly on a record boundary.
func (s *Scanner) Err() error {
	return s.err
}

// Offset returns the stream offset of the first byte not yet consumed.
func (s *Scanner) Offset() int64 {
	return s.offset
}

// Count returns the number of delivered messages.
func (s *Scanner) Count() uint64 {
	return s.count
}

// Run publishes every message to sink until the input ends, an error occurs
// or ctx is done. ctx is checked between messages, so a blocked Read is not
// interrupted.
func (s *Scanner) Run(ctx context.Context, sink MessageSink) error {
	logger.Info("scanner started", "session", s.ID(), "framing", s.framing.String())

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("scanner canceled", "session", s.ID(), "messages", s.count, "offset", s.offset)
			return err
		}
		if !s.Scan() {
			break
		}
		sink.Publish(s.msg)
	}

	if err := s.Err(); err != nil {
		logger.Error("scanner stopped", "session", s.ID(), "messages", s.count, "offset", s.offset, "error", err)
		return err
	}
	logger.Info("scanner stopped", "session", s.ID(), "messages", s.count, "offset", s.offset)
	return nil
}

func (s *Scanner) stop(err error) {
	s.done = true
	s.err = err
	s.msg = Message{}
}

func (s *Scanner) decode(b []byte) (Message, int, error) {
	if s.framing != FramingLengthPrefixed {
		return Decode(b)
	}

	n, rest, err := protocol.ReadUint16(b)
	if err != nil {
		return Message{}, 0, err
	}
	if len(rest) < int(n) {
		return Message{}, 0, &IncompleteError{Field: "length", Need: lengthPrefixSize + int(n), Have: len(b)}
	}

	msg, size, err := Decode(rest[:n])
	if errors.Is(err, ErrIncomplete) {
		return Message{}, 0, fmt.Errorf("%w: prefix %d is shorter than the record", ErrLengthMismatch, n)
	}
	if err != nil {
		return Message{}, 0, err
	}
	if size != int(n) {
		return Message{}, 0, fmt.Errorf("%w: prefix %d, %s is %d bytes", ErrLengthMismatch, n, msg.Kind(), size)
	}
	return msg, lengthPrefixSize + size, nil
}

// fill compacts the buffer, grows it when full and reads more input.
func (s *Scanner) fill() error {
	if s.start > 0 {
		copy(s.buf, s.buf[s.start:s.end])
		s.end -= s.start
		s.start = 0
	}

	if s.end == len(s.buf) {
		if len(s.buf) >= s.maxBuf {
			return ErrBufferFull
		}
		grown := make([]byte, min(2*len(s.buf), s.maxBuf))
		copy(grown, s.buf[:s.end])
		s.buf = grown
	}

	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf[s.end:])
		s.end += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.eof = true
				return nil
			}
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return ErrNoProgress
}

package protocol

import (
	"encoding/binary"
)

// Reader is a forward-only cursor over an immutable byte window.
//
// Every read consumes exactly its fixed width or nothing at all. The first
// failure is kept and turns later reads into no-ops returning zero values,
// so a fixed sequence of field reads can be checked once through Err.
type Reader struct {
	buf []byte
	off int
	tag byte
	err error
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// NewRecordReader returns a Reader over a whole record whose first byte is
// the tag. The cursor starts after the tag and error offsets are relative to
// the start of the record.
func NewRecordReader(b []byte) *Reader {
	r := &Reader{buf: b}
	if len(b) > 0 {
		r.tag = b[0]
		r.off = 1
	}
	return r
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Tag returns the record tag for readers built with NewRecordReader.
func (r *Reader) Tag() byte {
	return r.tag
}

func (r *Reader) take(field string, n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf)-r.off < n {
		r.err = &IncompleteError{Field: field, Need: r.off + n, Have: len(r.buf)}
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) malformed(e *MalformedError) {
	e.Tag = r.tag
	r.err = e
}

// Skip consumes n bytes without interpreting them.
func (r *Reader) Skip(field string, n int) {
	r.take(field, n)
}

// Uint8 reads one byte.
func (r *Reader) Uint8(field string) uint8 {
	b := r.take(field, 1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Uint16 reads a big-endian uint16.
func (r *Reader) Uint16(field string) uint16 {
	b := r.take(field, 2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// Uint32 reads a big-endian uint32.
func (r *Reader) Uint32(field string) uint32 {
	b := r.take(field, 4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// Uint64 reads a big-endian uint64.
func (r *Reader) Uint64(field string) uint64 {
	b := r.take(field, 8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Alpha reads an n byte right space padded ASCII field and trims the padding.
func (r *Reader) Alpha(field string, n int) string {
	b := r.take(field, n)
	if b == nil {
		return ""
	}
	return trimAlpha(b)
}

// Stock reads the 8 byte stock symbol field.
func (r *Reader) Stock(field string) string {
	return r.Alpha(field, StockSize)
}

// Price4 reads a 4 byte price with 4 implied decimal places.
func (r *Reader) Price4(field string) Price4 {
	return Price4(r.Uint32(field))
}

// Price8 reads an 8 byte price with 8 implied decimal places.
func (r *Reader) Price8(field string) Price8 {
	return Price8(r.Uint64(field))
}

// Ternary reads a Y / N / space flag.
func (r *Reader) Ternary(field string) Ternary {
	return Code(r, field, Ternaries)
}

// Flag reads a strict two valued Y / N flag.
func (r *Reader) Flag(field string) bool {
	start := r.off
	b := r.take(field, 1)
	if b == nil {
		return false
	}
	switch b[0] {
	case 'Y':
		return true
	case 'N':
		return false
	}
	r.off = start
	r.malformed(&MalformedError{Reason: ReasonInvalidCode, Field: field, Enum: "yes/no flag", Offset: start, Byte: b[0]})
	return false
}

// Timestamp reads 8 bytes of nanoseconds since midnight.
func (r *Reader) Timestamp(field string) TimeOfDay {
	start := r.off
	ns := r.Uint64(field)
	if r.err != nil {
		return 0
	}
	t, ok := timeOfDay(ns)
	if !ok {
		r.off = start
		r.malformed(&MalformedError{Reason: ReasonTimeOutOfRange, Field: field, Offset: start, Value: ns})
		return 0
	}
	return t
}

// Seconds reads 4 bytes of whole seconds since midnight.
func (r *Reader) Seconds(field string) TimeOfDay {
	start := r.off
	s := r.Uint32(field)
	if r.err != nil {
		return 0
	}
	t, ok := timeOfDay(uint64(s) * nanosPerSecond)
	if !ok {
		r.off = start
		r.malformed(&MalformedError{Reason: ReasonTimeOutOfRange, Field: field, Offset: start, Value: uint64(s)})
		return 0
	}
	return t
}

// Code reads a single byte enumerated field through table t.
func Code[T ~uint8](r *Reader, field string, t *CodeTable[T]) T {
	start := r.off
	b := r.take(field, 1)
	if b == nil {
		return 0
	}
	v, ok := t.Lookup(b[0])
	if !ok {
		r.off = start
		r.malformed(&MalformedError{Reason: ReasonInvalidCode, Field: field, Enum: t.Name(), Offset: start, Byte: b[0]})
		return 0
	}
	return v
}

func trimAlpha(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == ' ' {
		end--
	}
	return string(b[:end])
}

// ReadUint16 decodes a big-endian uint16 from the front of b and returns the rest.
func ReadUint16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, b, &IncompleteError{Need: 2, Have: len(b)}
	}
	return binary.BigEndian.Uint16(b), b[2:], nil
}

// ReadUint32 decodes a big-endian uint32 from the front of b and returns the rest.
func ReadUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, b, &IncompleteError{Need: 4, Have: len(b)}
	}
	return binary.BigEndian.Uint32(b), b[4:], nil
}

// ReadUint64 decodes a big-endian uint64 from the front of b and returns the rest.
func ReadUint64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, b, &IncompleteError{Need: 8, Have: len(b)}
	}
	return binary.BigEndian.Uint64(b), b[8:], nil
}

// ReadAlpha decodes an n byte space padded field from the front of b and returns the rest.
func ReadAlpha(b []byte, n int) (string, []byte, error) {
	if len(b) < n {
		return "", b, &IncompleteError{Need: n, Have: len(b)}
	}
	return trimAlpha(b[:n]), b[n:], nil
}

package protocol

import "fmt"

// CodeEntry binds one wire byte to one named constant.
type CodeEntry[T ~uint8] struct {
	Code  byte
	Value T
	Name  string
}

// CodeTable is the closed byte to constant mapping of one enumeration.
// Tables are built once at init and only read afterwards.
type CodeTable[T ~uint8] struct {
	name    string
	entries []CodeEntry[T]
	byCode  [256]T
	known   [256]bool
	codes   map[T]byte
	names   map[T]string
}

// NewCodeTable builds a table from entries. A repeated code or value is a
// programming error and panics.
func NewCodeTable[T ~uint8](name string, entries []CodeEntry[T]) *CodeTable[T] {
	t := &CodeTable[T]{
		name:    name,
		entries: entries,
		codes:   make(map[T]byte, len(entries)),
		names:   make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		if t.known[e.Code] {
			panic(fmt.Sprintf("protocol: %s: duplicate code %q", name, e.Code))
		}
		if _, dup := t.codes[e.Value]; dup {
			panic(fmt.Sprintf("protocol: %s: duplicate value %d", name, e.Value))
		}
		t.known[e.Code] = true
		t.byCode[e.Code] = e.Value
		t.codes[e.Value] = e.Code
		t.names[e.Value] = e.Name
	}
	return t
}

// Name returns the enumeration name used in error messages.
func (t *CodeTable[T]) Name() string {
	return t.name
}

// Lookup maps a wire byte to its constant. Matching is exact.
func (t *CodeTable[T]) Lookup(b byte) (T, bool) {
	if !t.known[b] {
		return 0, false
	}
	return t.byCode[b], true
}

// Decode is Lookup returning a MalformedError for an unknown byte.
func (t *CodeTable[T]) Decode(b byte) (T, error) {
	v, ok := t.Lookup(b)
	if !ok {
		return 0, &MalformedError{Reason: ReasonInvalidCode, Enum: t.name, Byte: b}
	}
	return v, nil
}

// Code returns the wire byte of v, or 0 when v is not a member.
func (t *CodeTable[T]) Code(v T) byte {
	return t.codes[v]
}

// String returns the name of v.
func (t *CodeTable[T]) String(v T) string {
	if name, ok := t.names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", t.name, uint8(v))
}

// Entries returns a copy of the table in declaration order.
func (t *CodeTable[T]) Entries() []CodeEntry[T] {
	out := make([]CodeEntry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

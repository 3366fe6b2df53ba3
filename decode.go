package itch

import (
	"github.com/0x5487/itch/protocol"
)

// Decode decodes the message at the front of b and returns it with the
// number of bytes it occupies.
//
// A short window yields an *IncompleteError: buffer more bytes and call again
// with the same start. Bytes that cannot be a valid record yield a
// *MalformedError. Decode keeps no state between calls and never retains b.
func Decode(b []byte) (Message, int, error) {
	if len(b) < TagSize {
		return Message{}, 0, &IncompleteError{Field: "tag", Need: TagSize, Have: len(b)}
	}

	tag := b[0]
	e := reg.byTag[tag]
	if e == nil {
		return Message{}, 0, &MalformedError{Reason: protocol.ReasonUnknownTag, Tag: tag, Byte: tag}
	}

	size := HeaderSize + e.size
	if len(b) < size {
		return Message{}, 0, &IncompleteError{Field: e.name, Need: size, Have: len(b)}
	}

	r := protocol.NewRecordReader(b[:size])
	meta := readMetadata(r)
	body := e.decode(r)
	if err := r.Err(); err != nil {
		return Message{}, 0, err
	}
	if r.Offset() != size {
		return Message{}, 0, &MalformedError{Reason: protocol.ReasonSizeMismatch, Tag: tag, Offset: r.Offset(), Value: uint64(size)}
	}

	return Message{Metadata: meta, Body: body}, size, nil
}

// DecodeMetadata decodes the shared header from the front of b, which must
// start right after the tag byte.
func DecodeMetadata(b []byte) (Metadata, error) {
	if len(b) < MetadataSize {
		return Metadata{}, &IncompleteError{Field: "metadata", Need: MetadataSize, Have: len(b)}
	}
	r := protocol.NewReader(b[:MetadataSize])
	meta := readMetadata(r)
	if err := r.Err(); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

func readMetadata(r *protocol.Reader) Metadata {
	return Metadata{
		LocateCode:     r.Uint16("locate_code"),
		TrackingNumber: r.Uint16("tracking_number"),
		Timestamp:      r.Timestamp("timestamp"),
	}
}

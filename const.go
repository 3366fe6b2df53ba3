package itch

const (
	// DecoderVersion is the current version of the decoder
	DecoderVersion = "v1.0.0"

	// ProtocolRevision is the TotalView-ITCH revision whose field sets are decoded.
	// Bump DecoderVersion whenever a body layout changes.
	ProtocolRevision = "5.0"
)

// Wire layout of the part every message shares.
const (
	TagSize      = 1
	MetadataSize = 2 + 2 + 8
	HeaderSize   = TagSize + MetadataSize

	// lengthPrefixSize is the u16 record length used by length prefixed captures.
	lengthPrefixSize = 2
)

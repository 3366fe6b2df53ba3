package itch

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
)

func BenchmarkDecode(b *testing.B) {
	for _, f := range fixtures() {
		raw := f.raw
		b.Run(f.kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))
			for i := 0; i < b.N; i++ {
				if _, _, err := Decode(raw); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScanner(b *testing.B) {
	var stream []byte
	for i := 0; i < 1000; i++ {
		for _, f := range fixtures() {
			stream = append(stream, f.raw...)
		}
	}
	sink := NewDiscardSink()
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	b.ReportAllocs()
	b.SetBytes(int64(len(stream)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := NewScanner(bytes.NewReader(stream)).Run(context.Background(), sink); err != nil {
			b.Fatal(err)
		}
	}
}

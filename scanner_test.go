package itch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/0x5487/itch/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type scannerTestSuite struct {
	suite.Suite
	stream []byte
	want   []Body
}

func TestScannerTestSuite(t *testing.T) {
	suite.Run(t, new(scannerTestSuite))
}

func (s *scannerTestSuite) SetupTest() {
	s.stream = nil
	s.want = nil
	for _, f := range fixtures() {
		s.stream = append(s.stream, f.raw...)
		s.want = append(s.want, f.want)
	}
}

func (s *scannerTestSuite) collect(sc *Scanner) []Body {
	var got []Body
	for sc.Scan() {
		got = append(got, sc.Message().Body)
	}
	return got
}

func (s *scannerTestSuite) TestScanAll() {
	sc := NewScanner(bytes.NewReader(s.stream))

	s.Equal(s.want, s.collect(sc))
	s.NoError(sc.Err())
	s.Equal(int64(len(s.stream)), sc.Offset())
	s.Equal(uint64(len(s.want)), sc.Count())
	s.False(sc.Scan())
}

func (s *scannerTestSuite) TestOneByteReader() {
	sc := NewScannerWithOptions(iotest.OneByteReader(bytes.NewReader(s.stream)), ScannerOptions{BufferSize: 16})

	s.Equal(s.want, s.collect(sc))
	s.NoError(sc.Err())
}

func (s *scannerTestSuite) TestDataErrReader() {
	sc := NewScanner(iotest.DataErrReader(bytes.NewReader(s.stream)))

	s.Equal(s.want, s.collect(sc))
	s.NoError(sc.Err())
}

func (s *scannerTestSuite) TestEmptyInput() {
	sc := NewScanner(bytes.NewReader(nil))

	s.False(sc.Scan())
	s.NoError(sc.Err())
	s.Equal(uint64(0), sc.Count())
}

func (s *scannerTestSuite) TestTruncatedTail() {
	stream := s.stream[:len(s.stream)-3]
	sc := NewScanner(bytes.NewReader(stream))

	got := s.collect(sc)
	s.Equal(s.want[:len(s.want)-1], got)
	s.ErrorIs(sc.Err(), io.ErrUnexpectedEOF)
	s.ErrorIs(sc.Err(), ErrIncomplete)
}

func (s *scannerTestSuite) TestMalformedStops() {
	bad := newRecord('A').u64(1).u8('?').u32(1).stock("AAPL").u32(1).bytes()
	good := fixtureOf(KindOrderDelete)
	stream := append(append(append([]byte{}, good.raw...), bad...), good.raw...)

	sc := NewScanner(bytes.NewReader(stream))
	got := s.collect(sc)

	s.Equal([]Body{good.want}, got)
	var me *MalformedError
	s.Require().ErrorAs(sc.Err(), &me)
	s.Equal(protocol.ReasonInvalidCode, me.Reason)
	s.Equal("side", me.Field)
	s.Equal(int64(len(good.raw)), sc.Offset())
}

func (s *scannerTestSuite) TestUnknownTagStops() {
	stream := append(append([]byte{}, fixtureOf(KindSystemEvent).raw...), 'z', 0, 0)
	sc := NewScanner(bytes.NewReader(stream))

	s.Len(s.collect(sc), 1)
	var me *MalformedError
	s.Require().ErrorAs(sc.Err(), &me)
	s.Equal(protocol.ReasonUnknownTag, me.Reason)
	s.Equal(byte('z'), me.Tag)
}

func (s *scannerTestSuite) TestSkipKinds() {
	sc := NewScannerWithOptions(bytes.NewReader(s.stream), ScannerOptions{
		SkipKinds: []Kind{KindStockDirectory, KindNOII},
	})

	got := s.collect(sc)
	s.NoError(sc.Err())
	s.Len(got, len(s.want)-2)
	for _, b := range got {
		s.NotEqual(KindStockDirectory, b.Kind())
		s.NotEqual(KindNOII, b.Kind())
	}
	s.Equal(int64(len(s.stream)), sc.Offset())
}

func (s *scannerTestSuite) TestSkippedRecordsAreValidated() {
	bad := newRecord('R').stock("A").u8('?').u8('N').u32(100).u8('N').u8('C').alpha("", 2).
		u8('P').u8('N').u8('N').u8('1').u8('N').u32(0).u8('N').bytes()
	sc := NewScannerWithOptions(bytes.NewReader(bad), ScannerOptions{SkipKinds: []Kind{KindStockDirectory}})

	s.False(sc.Scan())
	s.ErrorIs(sc.Err(), ErrMalformed)
}

func (s *scannerTestSuite) TestBufferGrowth() {
	sc := NewScannerWithOptions(bytes.NewReader(s.stream), ScannerOptions{BufferSize: 4, MaxBufferSize: 64})

	s.Equal(s.want, s.collect(sc))
	s.NoError(sc.Err())
}

func (s *scannerTestSuite) TestBufferFull() {
	sc := NewScannerWithOptions(bytes.NewReader(fixtureOf(KindNOII).raw), ScannerOptions{BufferSize: 16, MaxBufferSize: 32})

	s.False(sc.Scan())
	s.ErrorIs(sc.Err(), ErrBufferFull)
}

func (s *scannerTestSuite) TestReadError() {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader(fixtureOf(KindSystemEvent).raw), iotest.ErrReader(boom))
	sc := NewScanner(r)

	s.True(sc.Scan())
	s.False(sc.Scan())
	s.ErrorIs(sc.Err(), boom)
}

func (s *scannerTestSuite) TestNoProgress() {
	sc := NewScanner(emptyReader{})

	s.False(sc.Scan())
	s.ErrorIs(sc.Err(), ErrNoProgress)
}

func (s *scannerTestSuite) TestLengthPrefixed() {
	var records [][]byte
	for _, f := range fixtures() {
		records = append(records, f.raw)
	}
	stream := lengthPrefixed(records...)

	sc := NewScannerWithOptions(iotest.HalfReader(bytes.NewReader(stream)), ScannerOptions{Framing: FramingLengthPrefixed})
	s.Equal(s.want, s.collect(sc))
	s.NoError(sc.Err())
	s.Equal(int64(len(stream)), sc.Offset())
}

func (s *scannerTestSuite) TestLengthMismatch() {
	raw := fixtureOf(KindOrderDelete).raw

	long := append(lengthPrefixed(append(append([]byte{}, raw...), 0)), lengthPrefixed(raw)...)
	sc := NewScannerWithOptions(bytes.NewReader(long), ScannerOptions{Framing: FramingLengthPrefixed})
	s.False(sc.Scan())
	s.ErrorIs(sc.Err(), ErrLengthMismatch)
	s.ErrorIs(sc.Err(), ErrMalformed)

	short := lengthPrefixed(raw[:len(raw)-1])
	sc = NewScannerWithOptions(bytes.NewReader(short), ScannerOptions{Framing: FramingLengthPrefixed})
	s.False(sc.Scan())
	s.ErrorIs(sc.Err(), ErrLengthMismatch)
	s.False(errors.Is(sc.Err(), ErrIncomplete))
}

func (s *scannerTestSuite) TestRun() {
	sink := NewMemorySink()
	sc := NewScanner(bytes.NewReader(s.stream))

	s.Require().NoError(sc.Run(context.Background(), sink))
	s.Equal(len(s.want), sink.Count())
	s.Equal(s.want[0], sink.Get(0).Body)
	s.NotEmpty(sc.ID())
}

func (s *scannerTestSuite) TestRunCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	var delivered int
	sink := SinkFunc(func(msgs ...Message) {
		delivered += len(msgs)
		if delivered == 3 {
			cancel()
		}
	})

	err := NewScanner(bytes.NewReader(s.stream)).Run(ctx, sink)
	s.ErrorIs(err, context.Canceled)
	s.Equal(3, delivered)
}

func (s *scannerTestSuite) TestRunReportsError() {
	stream := append(append([]byte{}, s.stream...), 0xff)
	sink := NewMemorySink()

	err := NewScanner(bytes.NewReader(stream)).Run(context.Background(), sink)
	s.ErrorIs(err, ErrMalformed)
	s.Equal(len(s.want), sink.Count())
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) {
	return 0, nil
}

func TestScannerIDsAreUnique(t *testing.T) {
	a := NewScanner(bytes.NewReader(nil))
	b := NewScanner(bytes.NewReader(nil))
	require.NotEqual(t, a.ID(), b.ID())
}

func TestFramingString(t *testing.T) {
	assert.Equal(t, "raw", FramingRaw.String())
	assert.Equal(t, "length_prefixed", FramingLengthPrefixed.String())
	assert.Equal(t, "Framing(9)", Framing(9).String())
}

package lzip

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, cfg Config, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriterConfig(&buf, cfg)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func decompress(t *testing.T, data []byte) []byte {
	t.Helper()
	r := NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

// Scenario 1: "hello\n" at level 6 roundtrips, and the trailer records
// the input's size and CRC-32/IEEE.
func TestHelloWorldTrailer(t *testing.T) {
	data := []byte("hello\n")
	compressed := compress(t, Config{Level: 6}, data)

	require.Equal(t, data, decompress(t, compressed))

	tr := decodeTrailer(compressed[len(compressed)-trailerSize:])
	require.Equal(t, uint64(6), tr.dataSize)
	require.Equal(t, crc32.ChecksumIEEE(data), tr.dataCRC)
	require.Equal(t, uint64(len(compressed)), tr.memberSize)
}

// Scenario 2: 1 MiB of a repeating 4-byte pattern at the fast preset
// compresses well and roundtrips.
func TestRepeatingPatternFastPreset(t *testing.T) {
	data := bytes.Repeat([]byte("abcd"), 1<<18)
	compressed := compress(t, Config{Level: 0}, data)

	require.LessOrEqual(t, len(compressed), 2<<10)
	require.Equal(t, data, decompress(t, compressed))
}

// Scenario 3: truncating the last byte of a compressed stream makes
// decoding fail with DataError.
func TestTruncatedStreamIsDataError(t *testing.T) {
	data := []byte("a reasonably long line of text to compress for this test")
	compressed := compress(t, Config{Level: 6}, data)
	truncated := compressed[:len(compressed)-1]

	r := NewReader(bytes.NewReader(truncated))
	_, err := io.ReadAll(r)
	require.Error(t, err)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, KindDataError, lerr.Kind)
}

// Scenario 4: concatenating two independently compressed members
// decompresses to the concatenation of their inputs.
func TestConcatenatedMembers(t *testing.T) {
	a := []byte("the first member's data")
	b := []byte("the second member's data, a little longer than the first")

	var both bytes.Buffer
	both.Write(compress(t, Config{Level: 3}, a))
	both.Write(compress(t, Config{Level: 6}, b))

	require.Equal(t, append(append([]byte{}, a...), b...), decompress(t, both.Bytes()))
}

// Scenario 5: compressing empty input yields a zero-CRC, zero-size
// member and decompresses to nothing.
func TestEmptyInput(t *testing.T) {
	compressed := compress(t, Config{Level: 6}, nil)

	tr := decodeTrailer(compressed[len(compressed)-trailerSize:])
	require.Equal(t, uint64(0), tr.dataSize)
	require.Equal(t, uint32(0), tr.dataCRC)

	out := decompress(t, compressed)
	require.Empty(t, out)
}

// Scenario 6: a member whose magic is right but whose version byte
// isn't 1 is rejected with UnsupportedVersion.
func TestUnsupportedVersion(t *testing.T) {
	compressed := compress(t, Config{Level: 6}, []byte("x"))
	bad := append([]byte{}, compressed...)
	bad[4] = 2

	r := NewReader(bytes.NewReader(bad))
	_, err := io.ReadAll(r)
	require.Error(t, err)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, KindUnsupportedVersion, lerr.Kind)
}

func TestBadMagicRejected(t *testing.T) {
	compressed := compress(t, Config{Level: 6}, []byte("x"))
	bad := append([]byte{}, compressed...)
	bad[0] = 'X'

	r := NewReader(bytes.NewReader(bad))
	_, err := io.ReadAll(r)
	require.Error(t, err)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, KindBadMagic, lerr.Kind)
}

// Flipping a bit in the trailer's CRC must surface as DataError even
// though the compressed payload itself decodes cleanly.
func TestCorruptedTrailerCRC(t *testing.T) {
	data := []byte("data whose trailer we are about to corrupt")
	compressed := compress(t, Config{Level: 6}, data)
	compressed[len(compressed)-trailerSize] ^= 0xff

	r := NewReader(bytes.NewReader(compressed))
	_, err := io.ReadAll(r)
	require.Error(t, err)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, KindDataError, lerr.Kind)
}

func TestMemberSizeSplitsMultipleMembers(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 10000)
	compressed := compress(t, Config{Level: 6, MemberSize: 4096}, data)

	entries, stats, err := List(bytes.NewReader(compressed))
	require.NoError(t, err)
	require.Greater(t, len(entries), 1)
	require.Equal(t, int64(len(data)), stats.UncompressedSize)
	require.Equal(t, data, decompress(t, compressed))
}

func TestTrailingGarbagePolicies(t *testing.T) {
	data := []byte("payload")
	compressed := compress(t, Config{Level: 6}, data)
	withGarbage := append(append([]byte{}, compressed...), []byte("garbage")...)

	r := NewReaderPolicy(bytes.NewReader(withGarbage), TrailingStrict)
	_, err := io.ReadAll(r)
	require.Error(t, err)

	r = NewReaderPolicy(bytes.NewReader(withGarbage), TrailingIgnore)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestCRCHelperMatchesStdlib(t *testing.T) {
	h := newCRC()
	h.Write([]byte("hello\n"))
	require.Equal(t, crc32.ChecksumIEEE([]byte("hello\n")), h.Sum32())
}

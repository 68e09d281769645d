package lzip

import (
	"io"

	"github.com/pkg/errors"
)

// headerSize is the fixed length of the lzip member header: a 4-byte
// magic, a 1-byte version, and a 1-byte coded dictionary size.
const headerSize = 6

var magic = [4]byte{'L', 'Z', 'I', 'P'}

const formatVersion = 1

// minDictSize and maxDictSize bound the dictionary sizes the lzip
// header's coded byte can represent: 2^12 through 2^29, per §6.
const (
	minDictSize = 1 << 12
	maxDictSize = 1 << 29
)

// encodeDictSize packs a dictionary size into the single byte lzip
// headers store it as: the low 5 bits are a power-of-two base, the high
// 3 bits are a fraction subtracted from it, per §6's
// base/16*frac formula. It picks the smallest encodable size that is at
// least as large as size.
func encodeDictSize(size int64) byte {
	if size < minDictSize {
		size = minDictSize
	}
	if size > maxDictSize {
		size = maxDictSize
	}
	for base := uint(12); base <= 29; base++ {
		full := int64(1) << base
		if full < size {
			continue
		}
		for frac := int64(7); frac >= 1; frac-- {
			v := full - (full/16)*frac
			if v >= size {
				return byte(base) | byte(frac<<5)
			}
		}
		return byte(base)
	}
	return 29
}

// decodeDictSize unpacks a coded dictionary-size byte, returning an
// error if its base is outside the valid [12, 29] range.
func decodeDictSize(b byte) (int64, error) {
	base := uint(b & 0x1f)
	frac := int64((b >> 5) & 0x07)
	if base < 12 || base > 29 {
		return 0, errBadDictionarySize
	}
	full := int64(1) << base
	return full - (full/16)*frac, nil
}

// writeHeader writes a 6-byte lzip header for the given dictionary size.
func writeHeader(w io.Writer, dictSize int64) error {
	var buf [headerSize]byte
	copy(buf[:4], magic[:])
	buf[4] = formatVersion
	buf[5] = encodeDictSize(dictSize)
	_, err := w.Write(buf[:])
	return err
}

// readHeader reads and validates a 6-byte lzip header, returning the
// decoded dictionary size.
func readHeader(r io.Reader) (int64, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return 0, err
		}
		return 0, errors.Wrap(err, "lzip: reading header")
	}
	if buf[0] != magic[0] || buf[1] != magic[1] || buf[2] != magic[2] || buf[3] != magic[3] {
		return 0, errBadMagic
	}
	if buf[4] != formatVersion {
		return 0, errUnsupportedVersion
	}
	return decodeDictSize(buf[5])
}

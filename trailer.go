package lzip

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// trailerSize is the fixed length of the 20-byte footer every member
// ends with: a CRC-32 of the decompressed bytes, their count, and the
// member's total size including its own header and trailer.
const trailerSize = 20

type trailer struct {
	dataCRC    uint32
	dataSize   uint64
	memberSize uint64
}

func (t trailer) encode() [trailerSize]byte {
	var buf [trailerSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], t.dataCRC)
	binary.LittleEndian.PutUint64(buf[4:12], t.dataSize)
	binary.LittleEndian.PutUint64(buf[12:20], t.memberSize)
	return buf
}

func decodeTrailer(buf []byte) trailer {
	return trailer{
		dataCRC:    binary.LittleEndian.Uint32(buf[0:4]),
		dataSize:   binary.LittleEndian.Uint64(buf[4:12]),
		memberSize: binary.LittleEndian.Uint64(buf[12:20]),
	}
}

func writeTrailer(w io.Writer, t trailer) error {
	buf := t.encode()
	_, err := w.Write(buf[:])
	return err
}

func readTrailer(r io.Reader) (trailer, error) {
	var buf [trailerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return trailer{}, errors.Wrap(err, "lzip: reading trailer")
	}
	return decodeTrailer(buf[:]), nil
}

package lzip

import (
	"hash"
	"hash/crc32"
)

// crcTable is the IEEE 802.3 CRC-32 polynomial table every lzip member's
// trailer checksum is computed against. The standard library's
// hash/crc32 already precomputes and caches this table; the spec's
// from-scratch CRC table is exactly what crc32.IEEETable is.
var crcTable = crc32.IEEETable

// newCRC returns a hash.Hash32 computing the IEEE CRC-32 of whatever is
// written to it, the same checksum a member's trailer records.
func newCRC() hash.Hash32 { return crc32.New(crcTable) }

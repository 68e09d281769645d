package lzma

import "github.com/deepin-community/go-lzip/basics/u32"

// nlz32 returns the number of leading zero bits in x, used by distSlot
// to find a distance's most significant set bit. 32 is returned for
// x == 0.
func nlz32(x uint32) int { return u32.NLZ(x) }

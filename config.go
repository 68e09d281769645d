package lzip

import "github.com/deepin-community/go-lzip/lzma"

// Preset bundles the dictionary size, match-finder depth, and parsing
// mode a compression level maps to, mirroring the 0-9 `-N` levels the
// lzip and xz command-line tools both expose. Grounded on the teacher's
// lzma/presets.go, adapted from LZMA2's level table to lzip's simpler
// fixed lc/lp/pb.
type Preset struct {
	Level    int
	DictSize int64
	NiceLen  int
	Mode     lzma.EncoderMode
}

// Presets is indexed by level 0 through 9.
var Presets = [10]Preset{
	{Level: 0, DictSize: 1 << 20, NiceLen: 16, Mode: lzma.ModeFast},
	{Level: 1, DictSize: 1 << 20, NiceLen: 16, Mode: lzma.ModeFast},
	{Level: 2, DictSize: 3 << 20, NiceLen: 32, Mode: lzma.ModeFast},
	{Level: 3, DictSize: 4 << 20, NiceLen: 32, Mode: lzma.ModeFast},
	{Level: 4, DictSize: 4 << 20, NiceLen: 16, Mode: lzma.ModeOptimal},
	{Level: 5, DictSize: 8 << 20, NiceLen: 32, Mode: lzma.ModeOptimal},
	{Level: 6, DictSize: 8 << 20, NiceLen: 64, Mode: lzma.ModeOptimal},
	{Level: 7, DictSize: 16 << 20, NiceLen: 64, Mode: lzma.ModeOptimal},
	{Level: 8, DictSize: 32 << 20, NiceLen: 128, Mode: lzma.ModeOptimal},
	{Level: 9, DictSize: 64 << 20, NiceLen: 273, Mode: lzma.ModeOptimal},
}

// DefaultMemberSize is the uncompressed-byte ceiling at which Writer
// starts a fresh member, matching lzip's own default volume size of
// 2 GiB when the caller does not ask for multi-volume splitting.
const DefaultMemberSize = 1 << 31

// Config holds everything a Writer needs beyond the destination stream.
type Config struct {
	// Level selects a Preset (0-9); values outside that range select 6.
	// DictSize and NiceLen, when set, override only their own field of
	// the preset.
	Level int
	// DictSize overrides the preset's dictionary size when non-zero.
	DictSize int64
	// NiceLen overrides the preset's NiceLen when non-zero. It is passed
	// to lzma.NewEncoder, which does not use it to cut match searches
	// short.
	NiceLen int
	// MemberSize bounds how many uncompressed bytes a single member may
	// hold before the writer starts a new one; 0 means DefaultMemberSize.
	MemberSize int64
}

func (c Config) preset() Preset {
	level := c.Level
	if level < 0 || level > 9 {
		level = 6
	}
	p := Presets[level]
	if c.DictSize > 0 {
		p.DictSize = c.DictSize
	}
	if c.NiceLen > 0 {
		p.NiceLen = c.NiceLen
	}
	return p
}

func (c Config) memberSize() int64 {
	if c.MemberSize > 0 {
		return c.MemberSize
	}
	return DefaultMemberSize
}

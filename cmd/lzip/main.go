// Command lzip compresses or decompresses files in the .lz container
// format implemented by the github.com/deepin-community/go-lzip
// package.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/deepin-community/go-lzip"
)

const usageStr = `Usage: lzip [OPTION]... [FILE]...
Compress or decompress FILEs in the .lz format (by default, compress FILEs
in place, appending .lz).

  -c, --stdout           write to standard output, keep input files
  -d, --decompress       force decompression
  -f, --force            overwrite existing output files
  -k, --keep             keep (don't delete) input files
  -l, --list             print total compressed/uncompressed sizes
  -o, --output=FILE      write to FILE instead of the default name
  -q, --quiet            suppress warnings
  -t, --test             test compressed file integrity
  -v, --verbose          verbose mode (repeat for more detail)
  -S, --member-size=SIZE set the member size limit for compression
  -0 ... -9              compression preset; default is 6
  -h, --help             give this help
  -V, --version          display version string

With no FILE, or when FILE is -, read standard input.
`

const (
	lzExt      = ".lz"
	defaultPreset = 6
	version    = "1.0"
)

type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	list       bool
	test       bool
	quiet      bool
	verbosity  int
	output     string
	memberSize int64
	preset     int
}

// filterPresetArg strips a short preset digit (e.g. "-6") out of arg,
// recording it into *preset, and returns what remains of arg. Grounded
// on the teacher's cmd/lzmago Preset.filterArg, which pflag has no
// built-in equivalent for (pflag treats "-6" as an unknown flag).
func filterPresetArg(arg string, preset *int) string {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return arg
	}
	kept := make([]byte, 0, len(arg))
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if c >= '0' && c <= '9' {
			*preset = int(c - '0')
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 1 {
		// Only the leading '-' is left: the argument held presets only.
		return ""
	}
	return string(kept)
}

func filterPresetArgs(args []string) ([]string, int) {
	preset := defaultPreset
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		arg = filterPresetArg(arg, &preset)
		if arg != "" {
			out = append(out, arg)
		}
	}
	return out, preset
}

func usage(w *os.File) { fmt.Fprint(w, usageStr) }

func main() {
	cmdName := filepath.Base(os.Args[0])

	args, preset := filterPresetArgs(os.Args[1:])

	flags := pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	flags.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = flags.BoolP("help", "h", false, "")
		ver        = flags.BoolP("version", "V", false, "")
		stdout     = flags.BoolP("stdout", "c", false, "")
		decompress = flags.BoolP("decompress", "d", false, "")
		force      = flags.BoolP("force", "f", false, "")
		keep       = flags.BoolP("keep", "k", false, "")
		list       = flags.BoolP("list", "l", false, "")
		test       = flags.BoolP("test", "t", false, "")
		quiet      = flags.BoolP("quiet", "q", false, "")
		verbose    = flags.CountP("verbose", "v", "")
		output     = flags.StringP("output", "o", "", "")
		memberSize = flags.Int64P("member-size", "S", 0, "")
	)
	if err := flags.Parse(args); err != nil {
		os.Exit(1)
	}

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *ver {
		fmt.Printf("lzip (go-lzip) %s\n", version)
		os.Exit(0)
	}

	level := zerolog.InfoLevel
	switch {
	case *quiet:
		level = zerolog.ErrorLevel
	case *verbose >= 2:
		level = zerolog.TraceLevel
	case *verbose == 1:
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).With().Timestamp().Str("cmd", cmdName).Logger()

	opts := &options{
		stdout:     *stdout,
		decompress: *decompress,
		force:      *force,
		keep:       *keep,
		list:       *list,
		test:       *test,
		quiet:      *quiet,
		verbosity:  *verbose,
		output:     *output,
		memberSize: *memberSize,
		preset:     preset,
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	if opts.list {
		status := listFiles(paths, log)
		os.Exit(status)
	}

	status := 0
	for _, path := range paths {
		if st := processFile(path, opts, log); st > status {
			status = st
		}
	}
	os.Exit(status)
}

func presetConfig(opts *options) lzip.Config {
	cfg := lzip.Config{Level: opts.preset}
	if opts.memberSize > 0 {
		cfg.MemberSize = opts.memberSize
	}
	return cfg
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deepin-community/go-lzip"
)

// userPathError is a path error presentable to a user: it drops the
// syscall-operation noise os.PathError carries (an lstat failure and an
// open failure on the same path read the same to someone running the
// lzip command). Grounded on the teacher's cmd/lzmago userPathError.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *userPathError) Unwrap() error { return e.Err }

func userError(path string, err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return &userPathError{Path: pe.Path, Err: pe.Err}
	}
	return &userPathError{Path: path, Err: err}
}

// outputPaths derives the default output path and a same-directory
// staging path for an operation, mirroring lzmaPacker/lzmaUnpacker's
// outputPaths in the teacher's cmd/lzmago/lzma.go.
func outputPaths(path string, opts *options) (out, tmp string, err error) {
	if opts.stdout || path == "-" {
		return "-", "-", nil
	}
	if opts.output != "" {
		out = opts.output
	} else if opts.decompress || opts.test {
		if !strings.HasSuffix(path, lzExt) {
			return "", "", errors.Errorf("%s: unknown suffix, skipping", path)
		}
		out = strings.TrimSuffix(path, lzExt)
		if out == "" {
			return "", "", errors.Errorf("%s: has only the %s suffix as a name", path, lzExt)
		}
	} else {
		if strings.HasSuffix(path, lzExt) {
			return "", "", errors.Errorf("%s: already has suffix %s, skipping", path, lzExt)
		}
		out = path + lzExt
	}
	tmp = out + ".tmp"
	return out, tmp, nil
}

// signalHandler removes tmpPath and exits with status 1 if the process
// receives a termination signal while a partial output file is open,
// matching the scoped-acquisition cleanup the design notes call for.
// Grounded on the teacher's cmd/lzmago signalHandler in cmd/lzip/lzma.go
// and the platform signal list in signals.go.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	notifySignals(sigch)
	go func() {
		select {
		case <-quit:
			stopSignals(sigch)
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(1)
		}
	}()
	return quit
}

// exitStatus maps an lzip.Error's Kind onto the CLI's documented exit
// codes; any other error is treated as an environmental failure.
func exitStatus(err error) int {
	var le *lzip.Error
	if errors.As(err, &le) {
		switch le.Kind {
		case lzip.KindDataError, lzip.KindTrailingGarbage, lzip.KindBadMagic,
			lzip.KindUnsupportedVersion, lzip.KindBadDictionarySize:
			return 2
		case lzip.KindInternalError:
			return 3
		default:
			return 1
		}
	}
	return 1
}

func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func openOutput(tmpPath string, force bool, perm os.FileMode) (*os.File, error) {
	if tmpPath == "-" {
		return os.Stdout, nil
	}
	if force {
		os.Remove(tmpPath)
	}
	return os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// processFile compresses or decompresses a single path according to
// opts, returning the process exit status its outcome maps to.
func processFile(path string, opts *options, log zerolog.Logger) int {
	if opts.test {
		return testFile(path, log)
	}

	out, tmp, err := outputPaths(path, opts)
	if err != nil {
		if !opts.quiet {
			log.Warn().Err(err).Msg("skip")
		}
		return 1
	}
	if out != "-" {
		if _, err := os.Lstat(out); err == nil && !opts.force {
			if !opts.quiet {
				log.Warn().Str("path", out).Msg("output file exists, use -f to overwrite")
			}
			return 1
		}
	}

	r, err := openInput(path)
	if err != nil {
		log.Error().Err(userError(path, err)).Msg("open")
		return 1
	}
	if r != os.Stdin {
		defer r.Close()
	}
	perm := os.FileMode(0666)
	if fi, err := r.Stat(); err == nil {
		perm = fi.Mode().Perm()
	}

	w, err := openOutput(tmp, opts.force, perm)
	if err != nil {
		log.Error().Err(userError(out, err)).Msg("open")
		return 1
	}

	quit := signalHandler(tmp)
	defer close(quit)

	if opts.decompress {
		err = decompressStream(r, w)
	} else {
		err = compressStream(r, w, opts)
	}
	if w != os.Stdout {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		if tmp != "-" {
			os.Remove(tmp)
		}
		log.Error().Err(err).Str("path", path).Msg("failed")
		return exitStatus(err)
	}

	if tmp != "-" && out != "-" {
		if err := os.Rename(tmp, out); err != nil {
			log.Error().Err(userError(out, err)).Msg("rename")
			return 1
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err := os.Remove(path); err != nil {
			log.Error().Err(userError(path, err)).Msg("remove")
			return 1
		}
	}
	return 0
}

func compressStream(r io.Reader, w io.Writer, opts *options) error {
	zw := lzip.NewWriterConfig(w, presetConfig(opts))
	if _, err := io.Copy(zw, r); err != nil {
		zw.Close()
		return errors.Wrap(err, "compressing")
	}
	return errors.Wrap(zw.Close(), "closing member")
}

func decompressStream(r io.Reader, w io.Writer) error {
	zr := lzip.NewReader(r)
	_, err := io.Copy(w, zr)
	return errors.Wrap(err, "decompressing")
}

func testFile(path string, log zerolog.Logger) int {
	r, err := openInput(path)
	if err != nil {
		log.Error().Err(userError(path, err)).Msg("open")
		return 1
	}
	if r != os.Stdin {
		defer r.Close()
	}
	zr := lzip.NewReader(r)
	_, err = io.Copy(io.Discard, zr)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("test failed")
		return exitStatus(err)
	}
	log.Info().Str("path", path).Msg("ok")
	return 0
}

func listFiles(paths []string, log zerolog.Logger) int {
	status := 0
	var totalComp, totalUncomp int64
	for _, path := range paths {
		r, err := openInput(path)
		if err != nil {
			log.Error().Err(userError(path, err)).Msg("open")
			status = 1
			continue
		}
		entries, stats, err := lzip.List(r)
		if r != os.Stdin {
			r.Close()
		}
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("list failed")
			status = exitStatus(err)
			continue
		}
		for i, e := range entries {
			ratio := 0.0
			if e.UncompressedSize > 0 {
				ratio = float64(e.CompressedSize) / float64(e.UncompressedSize)
			}
			fmt.Printf("%10d %10d %6.3f  %s#%d\n", e.CompressedSize, e.UncompressedSize, ratio, path, i+1)
		}
		totalComp += stats.CompressedSize
		totalUncomp += stats.UncompressedSize
	}
	if totalUncomp > 0 || totalComp > 0 {
		ratio := 0.0
		if totalUncomp > 0 {
			ratio = float64(totalComp) / float64(totalUncomp)
		}
		fmt.Printf("%10d %10d %6.3f  (totals)\n", totalComp, totalUncomp, ratio)
	}
	return status
}

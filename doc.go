// Package lzip implements the .lz container format: a streaming,
// multi-member wrapper around the raw LZMA bit stream implemented by
// the lzma subpackage. It provides a Writer and Reader compatible with
// the files the lzip and clzip command-line tools produce and consume.
package lzip

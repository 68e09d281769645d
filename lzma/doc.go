// Package lzma implements the LZMA codec: the range coder, the adaptive
// probability model, the sliding-window match finders, the price-model
// optimal-parsing and greedy encoders, and the streaming decoder.
//
// The package implements the classic (LZMA1) bit stream with fixed
// lc=3, lp=0, pb=2 parameters, as used by the lzip container format. It
// does not implement LZMA2's chunking or the xz container.
package lzma

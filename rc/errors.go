package rc

import "errors"

// errFirstByte is returned by Decoder.Init when the leading byte of a
// range-coded stream is not zero, which means the stream is corrupt or
// does not start at a range-coder boundary.
var errFirstByte = errors.New("rc: first byte of stream not zero")

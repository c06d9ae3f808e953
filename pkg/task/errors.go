package task

import "errors"

// ErrShutdownTimeout is returned by WaitWithTimeout when the work does not
// unwind before the deadline. Check with errors.Is.
var ErrShutdownTimeout = errors.New("task: shutdown timeout")

package compose

import "errors"

// ErrInputClosed is returned when the human's input ends before the poem
// reaches its maximum length.
var ErrInputClosed = errors.New("input closed before poem was full")

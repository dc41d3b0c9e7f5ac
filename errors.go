package scrollback

import "errors"

// ErrInvalidArgument is returned when a caller violates a precondition:
// a negative row, column or backlog limit, or a viewport with no rows.
var ErrInvalidArgument = errors.New("scrollback: invalid argument")

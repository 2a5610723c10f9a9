package envfile

import "errors"

// ErrMissingDelimiter is returned for a non-comment line without '='
var ErrMissingDelimiter = errors.New("missing '=' delimiter")

// Entry is a single definition line from a secrets file.
// Err is set when the line is malformed; Name and Value are empty then.
type Entry struct {
	Line  int
	Name  string
	Value string
	Raw   string
	Err   error
}

// Valid reports whether the entry can be sealed and published
func (e Entry) Valid() bool {
	return e.Err == nil
}

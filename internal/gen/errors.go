package gen

import "fmt"

// IOError reports a generated file that could not be written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// InvalidNameError reports a zone name that cannot be emitted as a plain
// quoted string literal.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("zone name %q: %s", e.Name, e.Reason)
}

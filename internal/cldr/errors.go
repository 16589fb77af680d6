package cldr

import (
	"errors"
	"fmt"
)

// ErrNoWindowsMap is reported when the document has no mapTimezones element
// of type "windows" and none inside <windowsZones>.
var ErrNoWindowsMap = errors.New(`no windows <mapTimezones> element`)

// ParseError reports a document that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing windowsZones XML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports well-formed XML whose shape no longer matches the
// expected CLDR layout.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected windowsZones layout: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

package gen

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format selects the language of the generated file.
type Format int

const (
	FormatZig Format = iota // zig
	FormatGo                // go

	formatTotal = int(iota)
)

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat maps a format name (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	for f := Format(0); int(f) < formatTotal; f++ {
		if strings.EqualFold(name, f.String()) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(FormatNames(), ", "))
}

// FormatNames lists every supported format name.
func FormatNames() []string {
	names := make([]string, 0, formatTotal)
	for f := Format(0); int(f) < formatTotal; f++ {
		names = append(names, f.String())
	}

	return names
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}

package zonemap

import (
	"maps"
	"slices"
)

// Entry pairs a Windows zone name with its canonical IANA identifier.
type Entry struct {
	// Windows is the Windows time zone display name, e.g. "Pacific Standard Time".
	Windows string
	// IANA is the tz database identifier, e.g. "America/Los_Angeles".
	IANA string
}

// Mapping associates Windows zone names with IANA identifiers.
// The zero value is ready to use.
type Mapping struct {
	entries map[string]string
}

// New creates an empty Mapping.
func New() *Mapping {
	return &Mapping{entries: make(map[string]string)}
}

// Set stores iana under windows. If windows was already present the old value
// is returned with replaced set to true.
func (m *Mapping) Set(windows, iana string) (previous string, replaced bool) {
	if m.entries == nil {
		m.entries = make(map[string]string)
	}

	previous, replaced = m.entries[windows]
	m.entries[windows] = iana

	return previous, replaced
}

// Get returns the IANA identifier stored for windows.
func (m *Mapping) Get(windows string) (string, bool) {
	iana, ok := m.entries[windows]
	return iana, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Keys returns the Windows names in ascending byte order.
func (m *Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m.entries))
}

// Sorted returns all entries ordered by Windows name, ascending.
func (m *Mapping) Sorted() []Entry {
	keys := m.Keys()

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Windows: k, IANA: m.entries[k]})
	}

	return out
}

// Columns returns the sorted Windows names and the IANA identifiers in the
// same order. Both slices always have the same length.
func (m *Mapping) Columns() (windows, iana []string) {
	sorted := m.Sorted()

	windows = make([]string, len(sorted))
	iana = make([]string, len(sorted))

	for i, e := range sorted {
		windows[i] = e.Windows
		iana[i] = e.IANA
	}

	return windows, iana
}

// FromEntries builds a Mapping from entries, applying them in order.
func FromEntries(entries ...Entry) *Mapping {
	m := New()
	for _, e := range entries {
		m.Set(e.Windows, e.IANA)
	}

	return m
}

package cldr

import (
	"errors"
	"fmt"
	"strings"

	"wintz-generator/internal/diagnostic"
	"wintz-generator/internal/zonemap"
)

const (
	// WorldTerritory marks the default mapping row for a Windows zone, as
	// opposed to a country-specific override.
	WorldTerritory = "001"
	// WindowsMapType is the type attribute of the mapTimezones element that
	// carries Windows zone names.
	WindowsMapType = "windows"

	etcPrefix = "Etc"
)

// Document is the extraction result for one windowsZones.xml document.
type Document struct {
	// Version is the CLDR revision from <version number="...">, with any
	// unexpanded "$Revision$" keyword stripped. Empty when unknown.
	Version string
	// TypeVersion is the tz database release the mapping was built against.
	TypeVersion string
	// OtherVersion is the Windows time zone data version.
	OtherVersion string
	// Mapping holds one entry per Windows zone name.
	Mapping *zonemap.Mapping
	// Diagnostics carries non-fatal findings (duplicates, Etc zones).
	Diagnostics diagnostic.Diagnostics
}

// Extract parses a windowsZones.xml document and builds the Windows-to-IANA
// mapping from its world-territory rows.
func Extract(data []byte) (*Document, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	windowsMap, ok := findWindowsMap(root)
	if !ok {
		return nil, &SchemaError{Err: ErrNoWindowsMap}
	}

	doc := &Document{
		TypeVersion:  windowsMap.attr("typeVersion"),
		OtherVersion: windowsMap.attr("otherVersion"),
		Mapping:      zonemap.New(),
	}

	if versions := root.all("version"); len(versions) > 0 {
		doc.Version = revision(versions[0].attr("number"))
	}

	for _, row := range windowsMap.descendants("mapZone") {
		if row.attr("territory") != WorldTerritory {
			continue
		}

		doc.addRow(row.attr("other"), row.attr("type"))
	}

	if err := doc.Diagnostics.Error(); err != nil {
		return nil, &SchemaError{Err: err}
	}

	if doc.Mapping.Len() == 0 {
		return nil, &SchemaError{Err: errors.New(`no mapZone rows with territory "` + WorldTerritory + `"`)}
	}

	return doc, nil
}

// findWindowsMap returns the first mapTimezones element typed "windows".
// Upstream documents leave the type off; the first mapTimezones inside
// <windowsZones> is used then.
func findWindowsMap(root *element) (*element, bool) {
	for _, el := range root.all("mapTimezones") {
		if el.attr("type") == WindowsMapType {
			return el, true
		}
	}

	for _, zones := range root.all("windowsZones") {
		if maps := zones.descendants("mapTimezones"); len(maps) > 0 {
			return maps[0], true
		}
	}

	return nil, false
}

// revision strips the version-control keyword wrapper from a version
// number: "$Revision: 14742 $" becomes "14742", "$Revision$" becomes "".
func revision(number string) string {
	number = strings.TrimSpace(number)
	if !strings.HasPrefix(number, "$Revision") {
		return number
	}

	number = strings.TrimPrefix(number, "$Revision")
	number = strings.TrimPrefix(number, ":")
	number = strings.TrimSuffix(number, "$")

	return strings.TrimSpace(number)
}

// addRow records one world-territory row. The type attribute lists IANA
// aliases most representative first; only the first is kept.
func (d *Document) addRow(windows, aliases string) {
	fields := strings.Fields(aliases)

	switch {
	case windows == "":
		d.Diagnostics.AddError(diagnostic.CodeEmptyRow,
			fmt.Sprintf("mapZone with type %q has no other attribute", aliases), "")

		return
	case len(fields) == 0:
		d.Diagnostics.AddError(diagnostic.CodeEmptyRow, "mapZone has no type attribute", windows)

		return
	}

	iana := fields[0]

	if prev, replaced := d.Mapping.Set(windows, iana); replaced {
		d.Diagnostics.AddWarning(diagnostic.CodeDuplicateZone,
			fmt.Sprintf("duplicate world mapping, %s replaced by %s", prev, iana), windows)
	}

	if strings.HasPrefix(iana, etcPrefix) {
		d.Diagnostics.AddInfo(diagnostic.CodeEtcZone,
			fmt.Sprintf("fixed offset zone %s, review manually", iana), windows)
	}
}

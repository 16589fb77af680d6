// Package cldr extracts the Windows-to-IANA zone table from the CLDR
// windowsZones.xml supplemental data document.
//
// The document is parsed into a small element tree. The first
// mapTimezones element typed "windows" is located by linear search, and
// every mapZone row under it marked with the world territory ("001") yields
// one entry: the Windows name from "other" and the first IANA alias from
// "type".
package cldr

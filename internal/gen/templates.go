package gen

import "text/template"

var zigTemplate = template.Must(template.New("zig").Parse(`//! A mapping of Windows time zone names to IANA db identifiers.
// This file is autogenerated by wintz-generator;
//
// --- Do not edit ---
//
// latest refresh: {{.Timestamp}}
{{- if .SourceURL}}
// source: {{.SourceURL}}
{{- end}}
{{- if .CLDRVersion}}
// cldr version: {{.CLDRVersion}}
{{- end}}
{{- if .TZVersion}}
// tz data version: {{.TZVersion}}
{{- end}}
{{- if .WindowsVersion}}
// windows data version: {{.WindowsVersion}}
{{- end}}
// windows_names are sorted alphabetically so we can do binary search
pub const windows_names = [_][]const u8{
{{- range .WindowsNames}}
    "{{.}}",
{{- end}}
};

pub const iana_names = [_][]const u8{
{{- range .IANANames}}
    "{{.}}",
{{- end}}
};
`))

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by wintz-generator. DO NOT EDIT.
//
// latest refresh: {{.Timestamp}}
{{- if .SourceURL}}
// source: {{.SourceURL}}
{{- end}}
{{- if .CLDRVersion}}
// cldr version: {{.CLDRVersion}}
{{- end}}
{{- if .TZVersion}}
// tz data version: {{.TZVersion}}
{{- end}}
{{- if .WindowsVersion}}
// windows data version: {{.WindowsVersion}}
{{- end}}

package {{.PackageName}}

// WindowsNames holds Windows time zone names sorted in byte order so they
// can be binary searched. IANANames[i] is the IANA identifier for
// WindowsNames[i].
var WindowsNames = [...]string{
{{- range .WindowsNames}}
	"{{.}}",
{{- end}}
}

// IANANames holds the IANA identifier for each entry of WindowsNames.
var IANANames = [...]string{
{{- range .IANANames}}
	"{{.}}",
{{- end}}
}
`))

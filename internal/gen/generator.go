package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"text/template"
	"time"

	"wintz-generator/internal/zonemap"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Format selects the output language.
	Format Format
	// PackageName is the package clause for FormatGo output.
	PackageName string
	// SourceURL is recorded in the header when set.
	SourceURL string
	// CLDRVersion is the CLDR revision of the source document.
	CLDRVersion string
	// TZVersion is the tz database release the mapping was built against.
	TZVersion string
	// WindowsVersion is the Windows time zone data version.
	WindowsVersion string
	// DebugDir receives the unformatted source when go/format rejects it.
	// Empty disables the sidecar.
	DebugDir string
	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Format:      FormatZig,
		PackageName: "wintz",
		Now:         time.Now,
	}
}

// Generator renders zone mappings into source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Generator{config: config}
}

// GeneratedFile represents a rendered source file.
type GeneratedFile struct {
	// Filename is the base name of the destination.
	Filename string
	// Content is the rendered source.
	Content []byte
}

// templateData holds all data needed for the table templates.
type templateData struct {
	PackageName    string
	Timestamp      string
	SourceURL      string
	CLDRVersion    string
	TZVersion      string
	WindowsVersion string
	WindowsNames   []string
	IANANames      []string
}

// Generate renders m into a file named after path.
func (g *Generator) Generate(m *zonemap.Mapping, path string) (*GeneratedFile, error) {
	windows, iana := m.Columns()

	for i := range windows {
		if err := validateName(windows[i]); err != nil {
			return nil, err
		}

		if err := validateName(iana[i]); err != nil {
			return nil, err
		}
	}

	data := &templateData{
		PackageName:    g.config.PackageName,
		Timestamp:      g.config.Now().UTC().Format(time.RFC3339),
		SourceURL:      g.config.SourceURL,
		CLDRVersion:    g.config.CLDRVersion,
		TZVersion:      g.config.TZVersion,
		WindowsVersion: g.config.WindowsVersion,
		WindowsNames:   windows,
		IANANames:      iana,
	}

	filename := filepath.Base(path)

	tmpl, err := g.template()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	if g.config.Format != FormatGo {
		return &GeneratedFile{Filename: filename, Content: buf.Bytes()}, nil
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}

// Emit renders m and overwrites path with the result. Nothing is written
// when rendering fails.
func (g *Generator) Emit(m *zonemap.Mapping, path string) (*GeneratedFile, error) {
	file, err := g.Generate(m, path)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", path, err)
	}

	if err := WriteFile(path, file.Content); err != nil {
		return nil, err
	}

	return file, nil
}

func (g *Generator) template() (*template.Template, error) {
	switch g.config.Format {
	case FormatZig:
		return zigTemplate, nil
	case FormatGo:
		return goTemplate, nil
	default:
		return nil, fmt.Errorf("no template for format %s", g.config.Format)
	}
}

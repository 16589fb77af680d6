// Package pipeline runs the fetch, extract and emit stages in sequence.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"wintz-generator/internal/cldr"
	"wintz-generator/internal/config"
	"wintz-generator/internal/diagnostic"
	"wintz-generator/internal/fetch"
	"wintz-generator/internal/gen"
)

// Deps are the injectable collaborators of a run. Zero fields fall back to
// the network fetcher, the standard logger, os.Stdout and time.Now.
type Deps struct {
	Source fetch.Source
	Logger logrus.FieldLogger
	Stdout io.Writer
	Now    func() time.Time
}

// Result summarizes a successful run.
type Result struct {
	// Entries is the number of Windows zones emitted.
	Entries int
	// Output is the written path, empty for dry runs.
	Output string
	// Content is the rendered file.
	Content []byte
	// Diagnostics are the non-fatal findings of the run.
	Diagnostics diagnostic.Diagnostics
}

// Run fetches the document named by cfg.URL, builds the zone mapping and
// overwrites cfg.Output with the generated table. Any error aborts the run
// before the output is touched.
func Run(ctx context.Context, cfg config.Config, deps Deps) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	deps = deps.withDefaults(cfg)
	log := deps.Logger.WithField("url", cfg.URL)

	log.Info("Fetching Windows mapping info")

	data, err := deps.Source.Fetch(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}

	log.WithField("bytes", len(data)).Info("Making windows mapping")

	doc, err := cldr.Extract(data)
	if err != nil {
		return nil, err
	}

	res := &Result{Entries: doc.Mapping.Len()}
	res.Diagnostics.Merge(doc.Diagnostics)

	if !cfg.DryRun {
		checkExtension(&res.Diagnostics, cfg)
	}

	res.Diagnostics.Log(deps.Logger)

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Format = cfg.Format
	genCfg.PackageName = cfg.Package
	genCfg.SourceURL = cfg.URL
	genCfg.CLDRVersion = doc.Version
	genCfg.TZVersion = doc.TypeVersion
	genCfg.WindowsVersion = doc.OtherVersion
	genCfg.DebugDir = cfg.DebugDir
	genCfg.Now = deps.Now

	generator := gen.NewGenerator(genCfg)

	if cfg.DryRun {
		file, err := generator.Generate(doc.Mapping, cfg.Output)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", cfg.Output, err)
		}

		if _, err := deps.Stdout.Write(file.Content); err != nil {
			return nil, fmt.Errorf("writing to stdout: %w", err)
		}

		res.Content = file.Content

		deps.Logger.WithField("zones", res.Entries).Info("Done (dry run)")

		return res, nil
	}

	deps.Logger.WithField("output", cfg.Output).Info("Writing mapping")

	file, err := generator.Emit(doc.Mapping, cfg.Output)
	if err != nil {
		return nil, err
	}

	res.Output = cfg.Output
	res.Content = file.Content

	deps.Logger.WithFields(logrus.Fields{
		"zones":    res.Entries,
		"warnings": len(res.Diagnostics.Warnings),
	}).Info("Done")

	return res, nil
}

// checkExtension warns when the output file name does not carry the
// extension of the selected format.
func checkExtension(d *diagnostic.Diagnostics, cfg config.Config) {
	want := cfg.Format.Extension()
	if got := filepath.Ext(cfg.Output); got != want {
		d.AddWarning(diagnostic.CodeExtension,
			fmt.Sprintf("output %s does not end in %s for format %s", cfg.Output, want, cfg.Format), "")
	}
}

func (d Deps) withDefaults(cfg config.Config) Deps {
	if d.Source == nil {
		d.Source = fetch.New(fetch.Options{Timeout: cfg.Timeout})
	}

	if d.Logger == nil {
		d.Logger = logrus.StandardLogger()
	}

	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}

	if d.Now == nil {
		d.Now = time.Now
	}

	return d
}

package manifest

import (
	"context"
	"fmt"

	"github.com/erraggy/railsconst/normalizer"
)

// Result is the outcome of one token/format pair.
type Result struct {
	Token  string `yaml:"token" json:"token"`
	Kind   string `yaml:"kind" json:"kind"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Value  string `yaml:"value,omitempty" json:"value,omitempty"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Report collects the results of evaluating a manifest.
type Report struct {
	Results    []Result `yaml:"results" json:"results"`
	ErrorCount int      `yaml:"error_count" json:"error_count"`
}

// HasErrors reports whether any entry failed.
func (r *Report) HasErrors() bool {
	return r.ErrorCount > 0
}

// Evaluate transforms every entry of m. The manifest's inflection
// overrides are layered over whatever opts configure, so a manifest can
// refine a caller-supplied inflector or caller overrides. Evaluation stops
// early only when ctx is done.
func (m *Manifest) Evaluate(ctx context.Context, opts ...normalizer.Option) (*Report, error) {
	if !m.Inflections.IsEmpty() {
		opts = append(opts[:len(opts):len(opts)], normalizer.WithOverrides(m.Inflections))
	}
	n, err := normalizer.NewWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	report := &Report{Results: make([]Result, 0, len(m.Entries))}
	for _, e := range m.Entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		kind := e.Kind
		if kind == "" {
			kind = m.Kind
		}
		formats := e.Formats
		if len(formats) == 0 {
			formats = m.Formats
		}
		if len(formats) == 0 {
			formats = []string{""}
		}

		for _, format := range formats {
			res := Result{Token: e.Token, Kind: kind, Format: format}
			value, err := n.ToString(e.Token, kind, format)
			if err != nil {
				res.Error = err.Error()
				report.ErrorCount++
			} else {
				res.Value = value
			}
			report.Results = append(report.Results, res)
		}
	}
	return report, nil
}

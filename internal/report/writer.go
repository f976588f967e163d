// Package report renders parse results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/domain"
	"github.com/quantmind-br/esomanifest-go/internal/manifest"
	"github.com/quantmind-br/esomanifest-go/internal/theme"
)

// Record is the serialized form of one result
type Record struct {
	Path     string             `json:"path" yaml:"path"`
	Entry    string             `json:"entry,omitempty" yaml:"entry,omitempty"`
	Valid    bool               `json:"valid" yaml:"valid"`
	CacheHit bool               `json:"cache_hit" yaml:"cache_hit"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
	Version  *VersionInfo       `json:"version,omitempty" yaml:"version,omitempty"`
	Manifest *manifest.Manifest `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// NewRecord converts a result
func NewRecord(r *domain.Result) Record {
	rec := Record{
		Path:     r.Path,
		Entry:    r.Entry,
		Valid:    r.Valid(),
		CacheHit: r.CacheHit,
		Version:  CheckVersion(r.Manifest),
		Manifest: r.Manifest,
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	return rec
}

// batchDocument is the JSON and YAML shape of WriteAll
type batchDocument struct {
	Results []Record `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Out    io.Writer
	Format string
	// Color enables terminal styling in the text format
	Color bool
}

// Writer renders results in one format
type Writer struct {
	out    io.Writer
	format string
	color  bool
}

// NewWriter creates a new report writer. Out defaults to stdout and
// Format to text.
func NewWriter(opts WriterOptions) (*Writer, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Format == "" {
		opts.Format = config.FormatText
	}

	switch opts.Format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", opts.Format)
	}

	return &Writer{out: opts.Out, format: opts.Format, color: opts.Color}, nil
}

// Write renders a single result
func (w *Writer) Write(r *domain.Result) error {
	switch w.format {
	case config.FormatJSON:
		return w.writeJSON(NewRecord(r))
	case config.FormatYAML:
		return w.writeYAML(NewRecord(r))
	default:
		_, err := io.WriteString(w.out, w.text(r))
		return err
	}
}

// WriteAll renders results followed by their summary
func (w *Writer) WriteAll(results []*domain.Result) error {
	summary := Summarize(results)

	if w.format != config.FormatText {
		doc := batchDocument{Results: make([]Record, len(results)), Summary: summary}
		for i, r := range results {
			doc.Results[i] = NewRecord(r)
		}
		if w.format == config.FormatJSON {
			return w.writeJSON(doc)
		}
		return w.writeYAML(doc)
	}

	var b strings.Builder
	for _, r := range results {
		b.WriteString(w.text(r))
		b.WriteString("\n")
	}
	b.WriteString(w.paint(theme.Header, summary.String()))
	b.WriteString("\n")
	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (w *Writer) writeYAML(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (w *Writer) paint(style lipgloss.Style, s string) string {
	if !w.color {
		return s
	}
	return style.Render(s)
}

func (w *Writer) text(r *domain.Result) string {
	var b strings.Builder

	name := r.Path
	if r.Entry != "" {
		name += ":" + r.Entry
	}

	switch {
	case r.Err != nil:
		fmt.Fprintf(&b, "%s %s\n", w.paint(theme.Error, "FAIL"), w.paint(theme.Header, name))
		fmt.Fprintf(&b, "  %s\n", w.paint(theme.Error, r.Err.Error()))
	case r.Valid():
		fmt.Fprintf(&b, "%s %s\n", w.paint(theme.OK, "OK"), w.paint(theme.Header, name))
	default:
		fmt.Fprintf(&b, "%s %s\n", w.paint(theme.Error, "INVALID"), w.paint(theme.Header, name))
	}

	m := r.Manifest
	if m == nil {
		return b.String()
	}

	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "  %s %s\n", w.paint(theme.Label, fmt.Sprintf("%-18s", label+":")), value)
	}

	field(manifest.DirectiveTitle, m.Title)
	field(manifest.DirectiveAuthor, m.Author)
	field(manifest.DirectiveAPIVersion, apiVersions(m))
	if m.AddOnVersion != nil {
		field(manifest.DirectiveAddOnVersion, strconv.FormatUint(uint64(*m.AddOnVersion), 10))
	}
	if info := CheckVersion(m); info != nil {
		hint := "not semver"
		if info.Semver {
			hint = "semver " + info.Canonical
		}
		field(manifest.DirectiveVersion, info.Raw+" "+w.paint(theme.Label, "("+hint+")"))
	}
	if m.IsLibrary != nil {
		field(manifest.DirectiveIsLibrary, strconv.FormatBool(*m.IsLibrary))
	}
	field(manifest.DirectiveDependsOn, joinDependencies(m.DependsOn))
	field(manifest.DirectiveOptionalDependsOn, joinDependencies(m.OptionalDependsOn))

	for _, problem := range m.Errors {
		fmt.Fprintf(&b, "  %s %s\n", w.paint(theme.Error, "error"), problem.Error())
	}
	for _, problem := range m.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", w.paint(theme.Warn, "warning"), problem.Error())
	}

	return b.String()
}

func apiVersions(m *manifest.Manifest) string {
	if m.APIVersion == 0 && m.APIVersion2 == nil {
		return ""
	}
	s := strconv.FormatUint(uint64(m.APIVersion), 10)
	if m.APIVersion2 != nil {
		s += " " + strconv.FormatUint(uint64(*m.APIVersion2), 10)
	}
	return s
}

func joinDependencies(deps []manifest.Dependency) string {
	parts := make([]string, len(deps))
	for i, d := range deps {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ldino3121/faqify"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

// Export formats.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "md"
}

// FormatForPath picks the export format from a file extension.
// Anything other than .json is exported as Markdown.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatMarkdown
}

// Exporter writes generation results to files. Writes are atomic: content
// goes to a temporary file in the target directory which is then renamed
// over the destination.
type Exporter struct {
	// Now returns the export timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

// Export writes result to path in the format implied by its extension.
func (e *Exporter) Export(path string, src faqify.Source, result *faqify.Result) error {
	if result == nil || len(result.FAQs) == 0 {
		return faqify.Errorf(faqify.EINVALID, "nothing to export")
	}

	var data []byte
	var err error
	switch FormatForPath(path) {
	case FormatJSON:
		data, err = e.formatJSON(src, result)
	default:
		data, err = e.formatMarkdown(src, result)
	}
	if err != nil {
		return err
	}

	return writeAtomic(path, data)
}

type exportDoc struct {
	Source     string    `json:"source"`
	SourceKind string    `json:"sourceKind"`
	Generated  time.Time `json:"generated"`
	*faqify.Result
}

func (e *Exporter) formatJSON(src faqify.Source, result *faqify.Result) ([]byte, error) {
	doc := exportDoc{
		Source:     src.String(),
		SourceKind: string(src.Kind),
		Generated:  e.Now().UTC().Truncate(time.Second),
		Result:     result,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type frontmatter struct {
	Source    string `yaml:"source"`
	Title     string `yaml:"title,omitempty"`
	Generated string `yaml:"generated"`
	Count     int    `yaml:"count"`
	Method    string `yaml:"method,omitempty"`
}

// formatMarkdown renders the FAQs with YAML frontmatter.
func (e *Exporter) formatMarkdown(src faqify.Source, result *faqify.Result) ([]byte, error) {
	fm, err := yaml.Marshal(frontmatter{
		Source:    src.String(),
		Title:     result.Title,
		Generated: e.Now().Format("2006-01-02"),
		Count:     len(result.FAQs),
		Method:    result.Method,
	})
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(faqify.FormatFAQs(result.Title, result.FAQs))
	b.WriteString("\n")
	return b.Bytes(), nil
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

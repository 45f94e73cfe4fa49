package batch

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ldino3121/faqify"
)

// ReadFileFunc reads a local file. It matches os.ReadFile.
type ReadFileFunc func(path string) ([]byte, error)

// ReadSources parses a batch list with one source per line. Blank lines and
// lines starting with '#' are skipped. Lines with an http or https scheme are
// URLs; other lines naming a readable file become documents; anything else
// is treated as a URL missing its scheme.
func ReadSources(r io.Reader, readFile ReadFileFunc) ([]faqify.Source, error) {
	if readFile == nil {
		readFile = os.ReadFile
	}

	var sources []faqify.Source
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			sources = append(sources, faqify.NewURLSource(line))
			continue
		}

		if data, err := readFile(line); err == nil {
			sources = append(sources, faqify.NewDocumentSource(data, "", filepath.Base(line)))
			continue
		}

		sources = append(sources, faqify.NewURLSource(faqify.NormalizeURL(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sources, nil
}

// Key returns a string identifying the source for de-duplication. URLs are
// compared without fragments and with a lowercase host; text and documents
// by a hash of their content.
func Key(src faqify.Source) string {
	switch src.Kind {
	case faqify.SourceURL:
		u, err := url.Parse(src.URL)
		if err != nil {
			return "url:" + src.URL
		}
		u.Fragment = ""
		u.Host = strings.ToLower(u.Host)
		u.Scheme = strings.ToLower(u.Scheme)
		if u.Path == "" {
			u.Path = "/"
		}
		return "url:" + u.String()
	case faqify.SourceDocument:
		if src.Document == nil {
			return "document:"
		}
		return "document:" + hash(src.Document.Data)
	default:
		return "text:" + hash([]byte(src.Text))
	}
}

func hash(data []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}

// Dedupe removes repeated sources, keeping the first occurrence.
func Dedupe(sources []faqify.Source) []faqify.Source {
	seen := make(map[string]bool, len(sources))
	out := make([]faqify.Source, 0, len(sources))
	for _, src := range sources {
		key := Key(src)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, src)
	}
	return out
}

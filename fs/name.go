// Package fs provides file-based export of generated FAQs.
package fs

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ldino3121/faqify"
)

var (
	unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	dotRunRe     = regexp.MustCompile(`\.{2,}`)
)

// maxNameLength bounds generated file names, excluding the extension.
const maxNameLength = 100

// FileName derives a file name for a source's export.
// Example: https://example.com/news/transit-plan → example.com-news-transit-plan.md
//
// Text sources are named after their content hash since they carry no name.
func FileName(src faqify.Source, contentHash, ext string) (string, error) {
	var name string
	switch src.Kind {
	case faqify.SourceURL:
		u, err := url.Parse(src.URL)
		if err != nil {
			return "", err
		}
		path := strings.Trim(u.Path, "/")
		if path == "" {
			name = u.Hostname()
		} else {
			name = u.Hostname() + "-" + strings.ReplaceAll(path, "/", "-")
		}
	case faqify.SourceDocument:
		if src.Document != nil && src.Document.Name != "" {
			base := filepath.Base(src.Document.Name)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	if name == "" {
		name = "text"
		if contentHash != "" {
			name += "-" + contentHash
		}
	}

	name = unsafeNameRe.ReplaceAllString(name, "-")
	name = strings.Trim(dotRunRe.ReplaceAllString(name, "."), "-.")
	if name == "" {
		return "", faqify.Errorf(faqify.EINVALID, "cannot derive a file name for %s", src.String())
	}
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return name + "." + strings.TrimPrefix(ext, "."), nil
}

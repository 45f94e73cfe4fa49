package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ldino3121/faqify"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	src, err := c.source(deps)
	if err != nil {
		return c.fail(deps, err)
	}

	if deps.NewGenerator == nil {
		return c.fail(deps, faqify.Errorf(faqify.EAUTH, "no completion service configured"))
	}
	gen, err := deps.NewGenerator(c.Extractor)
	if err != nil {
		return c.fail(deps, err)
	}

	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	result, err := gen.Generate(ctx, src, faqify.ParseCount(c.Count))
	if err != nil {
		return c.fail(deps, err)
	}

	if c.Save {
		if err := saveResult(deps, src, result, c.Name); err != nil {
			return c.fail(deps, err)
		}
	}

	if c.Out != "" {
		if err := deps.Exporter.Export(c.Out, src, result); err != nil {
			return c.fail(deps, err)
		}
		fmt.Fprintf(deps.Stderr, "Wrote %d FAQs to %s\n", len(result.FAQs), c.Out)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, result)
	}
	fmt.Fprintln(deps.Stdout, faqify.FormatFAQs(result.Title, result.FAQs))
	return nil
}

// source resolves the command arguments to exactly one Source.
func (c *GenerateCmd) source(deps *Dependencies) (faqify.Source, error) {
	switch {
	case c.Text != "" && c.Source != "":
		return faqify.Source{}, faqify.Errorf(faqify.EINVALID, "give either a source or --text, not both")
	case c.Text != "":
		return faqify.NewTextSource(c.Text), nil
	case c.Source == "":
		return faqify.Source{}, faqify.Errorf(faqify.EINVALID, "a URL, file path or --text is required")
	case c.Source == "-":
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return faqify.Source{}, err
		}
		return faqify.NewTextSource(string(data)), nil
	}

	lower := strings.ToLower(c.Source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return faqify.NewURLSource(c.Source), nil
	}
	if deps.ReadFile != nil {
		if data, err := deps.ReadFile(c.Source); err == nil {
			return faqify.NewDocumentSource(data, "", c.Source), nil
		}
	}
	return faqify.NewURLSource(faqify.NormalizeURL(c.Source)), nil
}

// fail reports err in the selected output mode and returns it.
func (c *GenerateCmd) fail(deps *Dependencies, err error) error {
	if c.JSON {
		_ = writeJSON(deps.Stdout, faqify.NewErrorEnvelope(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", faqify.UserMessage(err))
	if d := faqify.ErrorMessage(err); faqify.ErrorCode(err) != faqify.EINTERNAL && d != "" {
		fmt.Fprintf(deps.Stderr, "  %s\n", d)
	}
	return err
}

// saveResult stores result as a collection unless one with the same
// content and the same number of FAQs already exists.
func saveResult(deps *Dependencies, src faqify.Source, result *faqify.Result, name string) error {
	if result.ContentHash != "" {
		hash := result.ContentHash
		existing, err := deps.Collections.FindCollections(deps.Ctx, faqify.CollectionFilter{ContentHash: &hash})
		if err != nil {
			return err
		}
		for _, c := range existing {
			if len(c.FAQs) == len(result.FAQs) {
				fmt.Fprintf(deps.Stderr, "Already saved as %s (%s)\n", c.ID, c.Name)
				return nil
			}
		}
	}

	if name == "" {
		name = result.Title
	}
	if name == "" {
		name = src.String()
	}

	collection := &faqify.Collection{
		Name:        name,
		SourceKind:  src.Kind,
		Source:      src.String(),
		Title:       result.Title,
		ContentHash: result.ContentHash,
		FAQs:        result.FAQs,
	}
	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved collection %q (%s)\n", collection.Name, collection.ID)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

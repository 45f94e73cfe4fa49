package main

import (
	"fmt"

	"github.com/ldino3121/faqify"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	col, err := deps.Collections.FindCollectionByID(deps.Ctx, c.ID)
	if faqify.ErrorCode(err) == faqify.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'faqify list' to see saved collections.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqify.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, col)
	}

	title := col.Title
	if title == "" {
		title = col.Name
	}
	fmt.Fprintln(deps.Stdout, faqify.FormatFAQs(title, col.FAQs))
	return nil
}

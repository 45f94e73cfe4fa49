package main

import (
	"fmt"

	"github.com/ldino3121/faqify"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx, faqify.CollectionFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqify.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'faqify generate --save' to create one.")
		return nil
	}

	for _, col := range collections {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d FAQs  %s\n",
			col.ID, col.CreatedAt.Format("2006-01-02"), col.Name, len(col.FAQs), col.Source)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/ldino3121/faqify"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return faqify.Errorf(faqify.EINVALID, "use --force to confirm deletion")
	}

	col, err := deps.Collections.FindCollectionByID(deps.Ctx, c.ID)
	if faqify.ErrorCode(err) == faqify.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'faqify list' to see saved collections.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqify.ErrorMessage(err))
		return err
	}

	if err := deps.Collections.DeleteCollection(deps.Ctx, col.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqify.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", col.Name)
	return nil
}

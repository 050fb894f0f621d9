package main

import (
	"fmt"

	"github.com/ladle-app/ladle"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return ladle.Errorf(ladle.ETINTERNAL, "use --force to confirm deletion")
	}

	rec, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: recipe %q not found. Use 'ladle list' to see saved recipes.\n", c.ID)
		return err
	}

	if err := deps.Recipes.DeleteRecipe(deps.Ctx, rec.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ladle.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted recipe %q\n", rec.Recipe.Title)
	return nil
}

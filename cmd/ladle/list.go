package main

import (
	"fmt"

	"github.com/ladle-app/ladle"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := ladle.RecipeFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Title != "" {
		filter.Title = ladle.String(c.Title)
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ladle.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'ladle scrape --save' to add one.")
		return nil
	}

	for _, rec := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", rec.ID, rec.Recipe.Title, rec.SourceURL)
	}

	return nil
}

// Run executes the similar command.
func (c *SimilarCmd) Run(deps *Dependencies) error {
	recipes, err := deps.Recipes.FindSimilarRecipes(deps.Ctx, c.Title, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ladle.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found.")
		return nil
	}

	for _, rec := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", rec.ID, rec.Recipe.Title, rec.SourceURL)
	}

	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/antzucaro/matchr"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ladle-app/ladle"
)

// Compile-time interface verification.
var _ ladle.RecipeService = (*RecipeService)(nil)

// RecipeService implements ladle.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// hashRecipe computes xxHash over the canonical JSON form of the converted
// recipe and returns a hex string. Two scrapes of an unchanged page produce
// the same hash.
func hashRecipe(rec *ladle.ConvertedRecipe) string {
	payload, err := json.Marshal(rec)
	if err != nil {
		return ""
	}
	h := xxhash.Sum64(payload)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateRecipe stores a recipe and its child rows in one transaction.
func (s *RecipeService) CreateRecipe(ctx context.Context, rec *ladle.StoredRecipe) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.ContentHash = hashRecipe(&rec.Recipe)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, source_url, content_hash, title, description, image, persons, time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceURL, rec.ContentHash, rec.Recipe.Title, rec.Recipe.Description,
		rec.Recipe.Image, rec.Recipe.Persons, rec.Recipe.Time, rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, ing := range rec.Recipe.Ingredients {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit, skipped)
			VALUES (?, ?, ?, ?, ?, 0)
		`, rec.ID, i, ing.Name, ing.Quantity, ing.Unit); err != nil {
			return err
		}
	}
	for i, original := range rec.Recipe.SkippedIngredients {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, position, name, skipped)
			VALUES (?, ?, ?, 1)
		`, rec.ID, i, original); err != nil {
			return err
		}
	}
	for i, step := range rec.Recipe.Preparation {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_steps (recipe_id, position, title, description)
			VALUES (?, ?, ?, ?)
		`, rec.ID, i, step.Title, step.Description); err != nil {
			return err
		}
	}
	for i, tag := range rec.Recipe.Tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_tags (recipe_id, position, name)
			VALUES (?, ?, ?)
		`, rec.ID, i, tag.Name); err != nil {
			return err
		}
	}
	if n := rec.Recipe.Nutrition; n != nil {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_nutrition (recipe_id, energy_kcal, energy_kj, carbohydrate, protein, fat, saturated_fat, sugar, fiber, sodium, cholesterol)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, n.EnergyKcal, n.EnergyKj, n.Carbohydrate, n.Protein, n.Fat,
			n.SaturatedFat, n.Sugar, n.Fiber, n.Sodium, n.Cholesterol); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecipeByID retrieves a recipe with its child rows.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*ladle.StoredRecipe, error) {
	var rec ladle.StoredRecipe
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, content_hash, title, description, image, persons, time, created_at
		FROM recipes
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.SourceURL, &rec.ContentHash, &rec.Recipe.Title,
		&rec.Recipe.Description, &rec.Recipe.Image, &rec.Recipe.Persons, &rec.Recipe.Time, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ladle.Errorf(ladle.ETNORECIPE, "recipe not found")
	}
	if err != nil {
		return nil, err
	}

	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if err := s.loadChildren(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindRecipes retrieves recipes matching the filter, newest first.
func (s *RecipeService) FindRecipes(ctx context.Context, filter ladle.RecipeFilter) ([]*ladle.StoredRecipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, title, description, image, persons, time, created_at FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Title != nil {
		query.WriteString(" AND title LIKE ?")
		args = append(args, "%"+*filter.Title+"%")
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*ladle.StoredRecipe
	for rows.Next() {
		var rec ladle.StoredRecipe
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.ContentHash, &rec.Recipe.Title,
			&rec.Recipe.Description, &rec.Recipe.Image, &rec.Recipe.Persons, &rec.Recipe.Time, &createdAt); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		recipes = append(recipes, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rec := range recipes {
		if err := s.loadChildren(ctx, rec); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// FindSimilarRecipes ranks every stored recipe by Jaro-Winkler similarity
// of its title to the given one and returns the closest matches. The import
// flow uses this to warn about likely duplicates before saving.
func (s *RecipeService) FindSimilarRecipes(ctx context.Context, title string, limit int) ([]*ladle.StoredRecipe, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM recipes")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type candidate struct {
		id    string
		score float64
	}
	var candidates []candidate

	target := strings.ToLower(title)
	for rows.Next() {
		var id, candidateTitle string
		if err := rows.Scan(&id, &candidateTitle); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{
			id:    id,
			score: matchr.JaroWinkler(target, strings.ToLower(candidateTitle), false),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recipes := make([]*ladle.StoredRecipe, 0, len(candidates))
	for _, c := range candidates {
		rec, err := s.FindRecipeByID(ctx, c.id)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

// DeleteRecipe removes a recipe; child rows cascade.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ladle.Errorf(ladle.ETNORECIPE, "recipe not found")
	}
	return nil
}

// loadChildren populates ingredients, steps, tags and nutrition.
func (s *RecipeService) loadChildren(ctx context.Context, rec *ladle.StoredRecipe) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, quantity, unit, skipped
		FROM recipe_ingredients
		WHERE recipe_id = ?
		ORDER BY skipped, position
	`, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var ing ladle.Ingredient
		var skipped bool
		if err := rows.Scan(&ing.Name, &ing.Quantity, &ing.Unit, &skipped); err != nil {
			return err
		}
		if skipped {
			rec.Recipe.SkippedIngredients = append(rec.Recipe.SkippedIngredients, ing.Name)
		} else {
			rec.Recipe.Ingredients = append(rec.Recipe.Ingredients, ing)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	stepRows, err := s.db.QueryContext(ctx, `
		SELECT title, description
		FROM recipe_steps
		WHERE recipe_id = ?
		ORDER BY position
	`, rec.ID)
	if err != nil {
		return err
	}
	defer stepRows.Close()
	for stepRows.Next() {
		var step ladle.PreparationStep
		if err := stepRows.Scan(&step.Title, &step.Description); err != nil {
			return err
		}
		rec.Recipe.Preparation = append(rec.Recipe.Preparation, step)
	}
	if err := stepRows.Err(); err != nil {
		return err
	}

	tagRows, err := s.db.QueryContext(ctx, `
		SELECT name
		FROM recipe_tags
		WHERE recipe_id = ?
		ORDER BY position
	`, rec.ID)
	if err != nil {
		return err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var tag ladle.Tag
		if err := tagRows.Scan(&tag.Name); err != nil {
			return err
		}
		rec.Recipe.Tags = append(rec.Recipe.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return err
	}

	var n ladle.NutritionFacts
	err = s.db.QueryRowContext(ctx, `
		SELECT energy_kcal, energy_kj, carbohydrate, protein, fat, saturated_fat, sugar, fiber, sodium, cholesterol
		FROM recipe_nutrition
		WHERE recipe_id = ?
	`, rec.ID).Scan(&n.EnergyKcal, &n.EnergyKj, &n.Carbohydrate, &n.Protein, &n.Fat,
		&n.SaturatedFat, &n.Sugar, &n.Fiber, &n.Sodium, &n.Cholesterol)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	rec.Recipe.Nutrition = &n

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if the values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

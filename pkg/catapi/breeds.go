package catapi

import (
	"context"
	"fmt"
	"strconv"
)

const (
	pathBreeds      = "breeds"
	pathBreedSearch = "breeds/search"
)

// DefaultBreedLimit is used by ListBreeds when the caller passes a
// non-positive limit.
const DefaultBreedLimit = 30

// SearchBreed looks up a breed by free-text query and returns the first
// match. Partial queries work ("ragd" matches "Ragdoll"); the server's
// ranking decides which record comes first. Returns ErrBreedNotFound when
// nothing matches.
func (c *Client) SearchBreed(ctx context.Context, query string) (Breed, error) {
	var breeds []Breed
	if err := c.getJSON(ctx, pathBreedSearch, map[string]string{"q": query}, true, &breeds); err != nil {
		return Breed{}, err
	}
	c.log.Debugw("breed search", "query", query, "matches", len(breeds))

	if len(breeds) == 0 {
		return Breed{}, ErrBreedNotFound
	}
	return breeds[0], nil
}

// ListBreeds returns up to limit breed records in the server's alphabetical
// order. A non-positive limit falls back to DefaultBreedLimit; any other
// value is passed through untouched and an out-of-range rejection surfaces
// as a transport error.
func (c *Client) ListBreeds(ctx context.Context, limit int) ([]Breed, error) {
	if limit <= 0 {
		limit = DefaultBreedLimit
	}
	var breeds []Breed
	if err := c.getJSON(ctx, pathBreeds, map[string]string{"limit": strconv.Itoa(limit)}, true, &breeds); err != nil {
		return nil, err
	}
	c.log.Debugw("breed listing", "limit", limit, "returned", len(breeds))
	return breeds, nil
}

// breedField is the single lookup-and-project operation behind every
// per-field accessor: search, take the first match, extract one field.
func breedField[T any](ctx context.Context, c *Client, query string, project func(Breed) T) (T, error) {
	breed, err := c.SearchBreed(ctx, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return project(breed), nil
}

// BreedDescription returns the matched breed's description text.
func (c *Client) BreedDescription(ctx context.Context, query string) (string, error) {
	return breedField(ctx, c, query, func(b Breed) string { return b.Description })
}

// BreedTemperament returns the matched breed's temperament summary.
func (c *Client) BreedTemperament(ctx context.Context, query string) (string, error) {
	return breedField(ctx, c, query, func(b Breed) string { return b.Temperament })
}

// BreedLifeSpan returns the matched breed's life span range, e.g. "12 - 15".
func (c *Client) BreedLifeSpan(ctx context.Context, query string) (string, error) {
	return breedField(ctx, c, query, func(b Breed) string { return b.LifeSpan })
}

// BreedChildFriendliness returns the matched breed's child_friendly score.
// A zero result means the server reported zero, never "not found"; absence
// of a match is always an error.
func (c *Client) BreedChildFriendliness(ctx context.Context, query string) (int, error) {
	return breedField(ctx, c, query, func(b Breed) int { return b.ChildFriendly })
}

// BreedIntelligence returns the matched breed's intelligence score.
func (c *Client) BreedIntelligence(ctx context.Context, query string) (int, error) {
	return breedField(ctx, c, query, func(b Breed) int { return b.Intelligence })
}

// BreedAffection returns the matched breed's affection_level score.
func (c *Client) BreedAffection(ctx context.Context, query string) (int, error) {
	return breedField(ctx, c, query, func(b Breed) int { return b.AffectionLevel })
}

// BreedImageURL returns the matched breed's representative image URL,
// built as <ImageCDNURL><reference_image_id>.jpg.
func (c *Client) BreedImageURL(ctx context.Context, query string) (string, error) {
	breed, err := c.SearchBreed(ctx, query)
	if err != nil {
		return "", err
	}
	if breed.ReferenceImageID == "" {
		return "", fmt.Errorf("breed %q has no reference image", breed.Name)
	}
	return c.cfg.ImageCDNURL + breed.ReferenceImageID + ".jpg", nil
}

package catalog

import (
	"context"

	"github.com/matzehuels/careermap/pkg/roadmap"
)

// Suggestions returns up to MaxSuggestions role names for query. It lets a
// Catalog stand in for the remote service.
func (c *Catalog) Suggestions(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Suggest(query, MaxSuggestions), nil
}

// Roadmap is Generate under the name shared with the service client.
func (c *Catalog) Roadmap(ctx context.Context, role string) (roadmap.Roadmap, error) {
	return c.Generate(ctx, role)
}

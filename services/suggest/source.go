package suggest

import (
	"context"

	"tradecall/models"

	"go.uber.org/zap"
)

// Source produces formatted-address suggestions for a partial input.
type Source interface {
	Suggestions(ctx context.Context, partial string) ([]models.PlaceSuggestion, error)
}

// MergedSource combines the local Redis index with the remote Places API.
// A remote failure degrades silently to cached-only results.
type MergedSource struct {
	Local  Source
	Remote Source
	Limit  int
	Logger *zap.Logger
}

func (m *MergedSource) Suggestions(ctx context.Context, partial string) ([]models.PlaceSuggestion, error) {
	limit := m.Limit
	if limit <= 0 {
		limit = 5
	}

	var out []models.PlaceSuggestion
	seen := make(map[string]bool)
	add := func(suggestions []models.PlaceSuggestion) {
		for _, s := range suggestions {
			if len(out) >= limit || seen[s.Description] {
				continue
			}
			seen[s.Description] = true
			out = append(out, s)
		}
	}

	if m.Local != nil {
		local, err := m.Local.Suggestions(ctx, partial)
		if err != nil {
			m.Logger.Warn("local suggestion lookup failed", zap.Error(err))
		} else {
			add(local)
		}
	}

	if m.Remote != nil && len(out) < limit {
		remote, err := m.Remote.Suggestions(ctx, partial)
		if err != nil {
			// Degrade to whatever the local index produced.
			m.Logger.Warn("remote suggestion lookup failed", zap.Error(err))
		} else {
			add(remote)
		}
	}

	return out, nil
}

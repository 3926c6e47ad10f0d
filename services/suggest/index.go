package suggest

import (
	"context"
	"fmt"
	"strings"

	"tradecall/models"

	"github.com/go-redis/redis/v8"
)

const addressKey = "suggest:addresses"

// Index is a Redis ZSET-backed prefix index of addresses seen on accepted
// bookings. Members are stored as "lowercased|Original" so lookups are
// case-insensitive while the original formatting is returned.
type Index struct {
	Client *redis.Client
	Limit  int64
}

func NewIndex(client *redis.Client) *Index {
	return &Index{Client: client, Limit: 5}
}

// Learn adds an address to the index.
func (i *Index) Learn(ctx context.Context, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	member := strings.ToLower(address) + "|" + address

	_, err := i.Client.ZAdd(ctx, addressKey, &redis.Z{
		Score:  0,
		Member: member,
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to add address to suggestion index: %w", err)
	}
	return nil
}

// Suggestions returns addresses whose lowercased form starts with the query.
func (i *Index) Suggestions(ctx context.Context, partial string) ([]models.PlaceSuggestion, error) {
	query := strings.ToLower(strings.TrimSpace(partial))
	if query == "" {
		return nil, nil
	}

	results, err := i.Client.ZRangeByLex(ctx, addressKey, &redis.ZRangeBy{
		Min:    "[" + query,
		Max:    "[" + query + "\xff",
		Offset: 0,
		Count:  i.Limit,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to search suggestion index: %w", err)
	}

	suggestions := make([]models.PlaceSuggestion, 0, len(results))
	for _, result := range results {
		parts := strings.SplitN(result, "|", 2)
		if len(parts) == 2 {
			suggestions = append(suggestions, models.PlaceSuggestion{Description: parts[1]})
		}
	}
	return suggestions, nil
}

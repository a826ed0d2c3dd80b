package axle

import (
	"context"
	"fmt"

	"axle-assist/internal/loads"
	"axle-assist/internal/model"
)

// MaxLoadCards caps one search response. Truncation keeps the head of the
// upstream list in upstream order.
const MaxLoadCards = 10

// SearchLoads queries the transaction API and returns at most MaxLoadCards
// normalized cards.
func (r *implRepository) SearchLoads(ctx context.Context, params loads.SearchParams) ([]model.LoadCard, error) {
	raw, err := r.client.ListTransactions(ctx, params.Values())
	if err != nil {
		return nil, fmt.Errorf("axle repository: list transactions: %w", err)
	}

	r.l.Debugf(ctx, "axle repository: upstream returned %d records", len(raw))

	if len(raw) > MaxLoadCards {
		raw = raw[:MaxLoadCards]
	}

	cards := make([]model.LoadCard, len(raw))
	for i, rec := range raw {
		cards[i] = normalizeLoad(rec)
	}
	return cards, nil
}

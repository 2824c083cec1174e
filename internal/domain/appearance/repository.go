package appearance

import "context"

type Repository interface {
	UpsertBatch(ctx context.Context, rows []Appearance) error
	ListByMatch(ctx context.Context, matchID string) ([]Appearance, error)
}

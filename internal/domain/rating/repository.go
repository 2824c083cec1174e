package rating

import "context"

type Repository interface {
	GetByPlayerID(ctx context.Context, playerID string) (Profile, bool, error)
	GetByPlayerIDs(ctx context.Context, playerIDs []string) ([]Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Upsert(ctx context.Context, profiles []Profile) error
}

package match

import "context"

type Repository interface {
	Save(ctx context.Context, report Report) error
	Get(ctx context.Context, id string) (Report, bool, error)
}

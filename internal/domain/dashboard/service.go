package dashboard

import "context"

type Service interface {
	Overview(ctx context.Context) (Overview, error)
}

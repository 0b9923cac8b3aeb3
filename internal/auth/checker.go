package auth

import "context"

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

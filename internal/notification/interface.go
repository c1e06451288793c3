package notification

import "context"

// UseCase delivers status decision emails to businesses. Callers run Dispatch
// detached from the request; failures are logged, never propagated to the
// status change itself.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Dispatch(ctx context.Context, input DispatchInput) error
}

package mock

import (
	"context"

	"github.com/fwojciec/teibow"
)

var _ teibow.RunService = (*RunService)(nil)

// RunService is a mock implementation of teibow.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *teibow.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*teibow.Run, error)
	FindRunsFn    func(ctx context.Context) ([]*teibow.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *teibow.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*teibow.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*teibow.Run, error) {
	return s.FindRunsFn(ctx)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}

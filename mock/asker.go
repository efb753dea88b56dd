package mock

import (
	"context"

	"github.com/fwojciec/uidoc"
)

var _ uidoc.Asker = (*Asker)(nil)

// Asker is a mock implementation of uidoc.Asker.
type Asker struct {
	AskFn func(ctx context.Context, name, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, name, question string) (string, error) {
	return a.AskFn(ctx, name, question)
}

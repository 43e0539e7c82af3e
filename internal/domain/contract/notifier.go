package contract

import (
	"context"

	"github.com/dfigueroa/remote-week/internal/domain/entity"
)

// Notifier announces assignment events to an external channel. Implementations
// must not fail the originating operation; delivery problems are logged and
// dropped.
type Notifier interface {
	AssignmentCreated(ctx context.Context, user *entity.User, record *entity.Record)
	AssignmentChanged(ctx context.Context, user *entity.User, record *entity.Record)
}

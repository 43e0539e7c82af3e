package notify

import (
	"context"

	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
)

type noopNotifier struct{}

// NewNoop returns a notifier that discards every event. Used when Slack is
// not configured and in tests.
func NewNoop() contract.Notifier {
	return noopNotifier{}
}

func (noopNotifier) AssignmentCreated(context.Context, *entity.User, *entity.Record) {}
func (noopNotifier) AssignmentChanged(context.Context, *entity.User, *entity.Record) {}

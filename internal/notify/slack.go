package notify

import (
	"context"
	"fmt"

	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type slackNotifier struct {
	client    *slack.Client
	channelID string
	log       *zap.Logger
}

// NewSlack returns a notifier that announces assignments to a Slack channel.
func NewSlack(token, channelID string, log *zap.Logger) contract.Notifier {
	return &slackNotifier{
		client:    slack.New(token),
		channelID: channelID,
		log:       log,
	}
}

func (n *slackNotifier) AssignmentCreated(ctx context.Context, user *entity.User, record *entity.Record) {
	msg := fmt.Sprintf(":house: %s trabaja remoto el %s (%s)", user.Name, record.WeekDay, record.Date)
	n.post(ctx, msg)
}

func (n *slackNotifier) AssignmentChanged(ctx context.Context, user *entity.User, record *entity.Record) {
	msg := fmt.Sprintf(":arrows_counterclockwise: %s cambió su día remoto a %s (%s)", user.Name, record.WeekDay, record.Date)
	n.post(ctx, msg)
}

// post delivers best-effort; a failed announcement never fails the assignment.
func (n *slackNotifier) post(ctx context.Context, msg string) {
	_, _, err := n.client.PostMessageContext(ctx, n.channelID, slack.MsgOptionText(msg, false))
	if err != nil {
		n.log.Warn("failed to post slack notification", zap.Error(err))
	}
}

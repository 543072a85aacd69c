package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
)

// Notifier announces domain events to a Slack incoming webhook
type Notifier struct {
	webhookURL string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// New creates a Notifier for the given webhook URL
func New(webhookURL string) *Notifier {
	return &Notifier{webhookURL: webhookURL}
}

// ProcurementCreated posts a short announcement for a new procurement
func (n *Notifier) ProcurementCreated(ctx context.Context, p *model.Procurement) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("New procurement #%d: %s (%s, target %.2f %s)",
			p.ID, p.Title, p.City, p.TargetAmount, p.Unit),
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook", goerr.V("procurement_id", p.ID))
	}
	return nil
}

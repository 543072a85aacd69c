package config

import "github.com/urfave/cli/v3"

// Notify holds notification configuration. An empty webhook URL
// disables announcements.
type Notify struct {
	SlackWebhookURL string
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for procurement announcements",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("GROUPBUY_SLACK_WEBHOOK_URL"),
		},
	}
}

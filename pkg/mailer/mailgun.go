package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// deliveryTag marks every message in the Mailgun dashboard.
const deliveryTag = "job-portal"

// Mailgun sends rendered email through one shared Mailgun client.
type Mailgun struct {
	client *mg.MailgunImpl
	Sender string
}

// NewMailgun builds the sender. apiBase selects a region such as
// mg.APIBaseEU; empty keeps the library default.
func NewMailgun(domain, apiKey, sender, apiBase string) *Mailgun {
	client := mg.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	return &Mailgun{client: client, Sender: sender}
}

// Send delivers one message; html is optional.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	if err := msg.AddTag(deliveryTag); err != nil {
		return err
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := m.client.Send(c, msg)
	return err
}

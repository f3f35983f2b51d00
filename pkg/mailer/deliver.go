package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mailtpl "github.com/oksasatya/job-portal-api/pkg/mailer/templates"
)

// ErrBadMessage marks a queue message that can never be delivered and must not be requeued.
var ErrBadMessage = errors.New("mailer: bad message")

// Sender delivers a rendered email. *Mailgun implements it.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Deliver decodes a queued EmailJob, renders its template if any and sends it.
func Deliver(ctx context.Context, s Sender, body []byte) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	if strings.TrimSpace(job.To) == "" {
		return fmt.Errorf("%w: missing recipient", ErrBadMessage)
	}
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, h, err := mailtpl.Render(strings.ToLower(job.Template), job.Data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadMessage, err)
		}
		subject, text, html = strings.TrimSpace(s), t, h
	}
	if subject == "" {
		subject = "Notification"
	}
	return s.Send(ctx, job.To, subject, text, html)
}

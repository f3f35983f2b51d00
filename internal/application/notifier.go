package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/config"
	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/pkg/mailer"
	mailtpl "github.com/oksasatya/job-portal-api/pkg/mailer/templates"
)

// Notifier turns domain events into queued emails. A nil Notifier, a nil
// publisher or MAIL_SEND_ENABLED=false makes every call a no-op.
// Publishing errors are logged and never returned.
type Notifier struct {
	Pub    EmailPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewNotifier(pub EmailPublisher, cfg *config.Config, logger *logrus.Logger) *Notifier {
	return &Notifier{Pub: pub, Cfg: cfg, Logger: logger}
}

func (n *Notifier) enabled() bool {
	return n != nil && n.Pub != nil && n.Cfg != nil && n.Cfg.MailSendEnabled
}

func (n *Notifier) publish(ctx context.Context, job mailer.EmailJob) {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := n.Pub.PublishEmail(c, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithFields(logrus.Fields{"template": job.Template, "to": job.To}).Warn("enqueue email failed")
	}
}

func (n *Notifier) Welcome(ctx context.Context, u *entity.User) {
	if !n.enabled() {
		return
	}
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.Cfg, u.Fullname, u.Email, u.Role.String()),
	})
}

func (n *Notifier) ApplicationReceived(ctx context.Context, owner, applicant *entity.User, job *entity.JobDetail, at time.Time) {
	if !n.enabled() {
		return
	}
	n.publish(ctx, mailer.EmailJob{
		To:       owner.Email,
		Template: mailtpl.ApplicationReceived,
		Data:     mailtpl.NewApplicationReceivedData(n.Cfg, owner.Fullname, owner.Email, applicant.Fullname, job.Title, job.Company.Name, at),
	})
}

func (n *Notifier) ApplicationStatus(ctx context.Context, student *entity.User, job *entity.JobDetail, status entity.ApplicationStatus, at time.Time) {
	if !n.enabled() {
		return
	}
	n.publish(ctx, mailer.EmailJob{
		To:       student.Email,
		Template: mailtpl.ApplicationStatus,
		Data:     mailtpl.NewApplicationStatusData(n.Cfg, student.Fullname, student.Email, job.Title, job.Company.Name, string(status), at),
	})
}

package application

import (
	"context"
	"io"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/pkg/mailer"
)

// Uploader stores a file and returns its public URL. *helpers.GCSUploader implements it.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// JobIndex is a full-text index over jobs.
type JobIndex interface {
	Index(ctx context.Context, job entity.JobDetail) error
	// Search returns matching job ids.
	Search(ctx context.Context, keyword string) ([]string, error)
}

// EmailPublisher puts an email job on the queue. *helpers.RabbitPublisher implements it.
type EmailPublisher interface {
	PublishEmail(ctx context.Context, job mailer.EmailJob) error
}

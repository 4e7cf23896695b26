package jobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/hireline/hireline/internal/job"
)

// Client submits jobs to the queue. It implements job.Notifier.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// ApplicationReceived enqueues an application-received notification.
func (c *Client) ApplicationReceived(ctx context.Context, notice job.ApplicationNotice) error {
	task, err := NewApplicationNoticeTask(ApplicationNoticePayload{
		NotificationID: uuid.NewString(),
		JobID:          notice.JobID,
		JobTitle:       notice.JobTitle,
		CompanyEmail:   notice.CompanyEmail,
		ApplicantName:  notice.ApplicantName,
		ApplicantEmail: notice.ApplicantEmail,
	})
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
	return err
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}

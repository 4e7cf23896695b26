package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeApplicationNotice is the task type for application-received
	// notification emails.
	TaskTypeApplicationNotice = "notify:application"
)

// ApplicationNoticePayload describes the notification sent to a company
// when someone applies to one of its postings.
type ApplicationNoticePayload struct {
	NotificationID string `json:"notification_id"`
	JobID          int64  `json:"job_id"`
	JobTitle       string `json:"job_title"`
	CompanyEmail   string `json:"company_email"`
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}

// NewApplicationNoticeTask constructs an Asynq task.
func NewApplicationNoticeTask(payload ApplicationNoticePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeApplicationNotice, data), nil
}

package job

import "time"

// Job is a posting owned by a company.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	CompanyID   int64     `json:"companyId"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyJob adds the applicant count for the owning company's listing.
type CompanyJob struct {
	Job
	ApplicantCount int `json:"applicantCount"`
}

// Applicant is the view of an application a company may see: name and
// email only, nothing else from the account record.
type Applicant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AppliedAt time.Time `json:"appliedAt"`
}

package job

type createJobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Salary      int64  `json:"salary" validate:"gte=0"`
}

package dto

import (
	"time"

	"job-portal/internal/domain/job"
)

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Location    string    `json:"location"`
	FixedSalary *int64    `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64    `json:"salaryFrom,omitempty"`
	SalaryTo    *int64    `json:"salaryTo,omitempty"`
	Expired     bool      `json:"expired"`
	PostedOn    time.Time `json:"jobPostedOn"`
	PostedBy    string    `json:"postedBy"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID.Hex(),
		Title:       j.Title,
		Description: j.Description,
		Category:    j.Category,
		Country:     j.Country,
		City:        j.City,
		Location:    j.Location,
		FixedSalary: j.FixedSalary,
		SalaryFrom:  j.SalaryFrom,
		SalaryTo:    j.SalaryTo,
		Expired:     j.Expired,
		PostedOn:    j.PostedOn,
		PostedBy:    j.PostedBy.Hex(),
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

package dto

import (
	"time"

	"job-portal/internal/domain/application"
)

type ResumeResponse struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type ApplicationResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	CoverLetter string         `json:"coverLetter"`
	Resume      ResumeResponse `json:"resume"`
	JobID       string         `json:"jobId"`
	ApplicantID string         `json:"applicantId"`
	EmployerID  string         `json:"employerId"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID.Hex(),
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		CoverLetter: a.CoverLetter,
		Resume:      ResumeResponse{PublicID: a.Resume.PublicID, URL: a.Resume.URL},
		JobID:       a.JobID.Hex(),
		ApplicantID: a.Applicant.User.Hex(),
		EmployerID:  a.Employer.User.Hex(),
		CreatedAt:   a.CreatedAt,
	}
}

func NewApplicationListResponse(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

package handler

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

// allowedResumeTypes mirrors what the frontend's uploader produces.
var allowedResumeTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"application/pdf": true,
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	seekerOnly := middleware.RequireRole(user.RoleJobSeeker)
	employerOnly := middleware.RequireRole(user.RoleEmployer)

	r.Post("/post", h.Post, requireAuth, seekerOnly)
	r.Get("/employer/getall", h.EmployerGetAll, requireAuth, employerOnly)
	r.Get("/jobseeker/getall", h.JobSeekerGetAll, requireAuth, seekerOnly)
	r.Delete("/delete/:id", h.Delete, requireAuth, seekerOnly)
}

func (h *ApplicationHandler) Post(c fiber.Ctx) error {
	applicantID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume File Required!", nil, err)
	}
	if !allowedResumeTypes[fh.Header.Get("Content-Type")] {
		return middleware.NewAppError(fiber.StatusBadRequest,
			"Invalid file type. Please upload a PNG, JPEG, WEBP or PDF file.", nil, nil)
	}

	// Buffer the upload through a disk temp file; the media store reads
	// from the path and the file is removed either way.
	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	created, err := h.uc.Apply(c.Context(), applicantID, usecase.ApplyInput{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		Address:     c.FormValue("address"),
		CoverLetter: c.FormValue("coverLetter"),
		JobID:       c.FormValue("jobId"),
		ResumePath:  tmpPath,
	})
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application Submitted!", dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) EmployerGetAll(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	apps, err := h.uc.ListForEmployer(c.Context(), employerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) JobSeekerGetAll(c fiber.Ctx) error {
	applicantID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	apps, err := h.uc.ListForApplicant(c.Context(), applicantID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	applicantID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	if err := h.uc.Delete(c.Context(), applicantID, c.Params("id")); err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application Deleted!", nil)
}

func mapApplicationError(err error) error {
	if err == nil {
		return nil
	}
	if usecase.IsValidationError(err) {
		return err
	}

	switch {
	case errors.Is(err, usecase.ErrResumeRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume File Required!", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found!", nil, err)
	case errors.Is(err, usecase.ErrJobExpired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job Seeker cannot apply, job has expired!", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found!", nil, err)
	case errors.Is(err, usecase.ErrNotApplicant):
		return middleware.NewAppError(fiber.StatusForbidden, "You are not allowed to delete this application.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

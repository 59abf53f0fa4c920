package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type postJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Location    string `json:"location"`
	FixedSalary *int64 `json:"fixedSalary"`
	SalaryFrom  *int64 `json:"salaryFrom"`
	SalaryTo    *int64 `json:"salaryTo"`
}

type updateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Location    *string `json:"location"`
	FixedSalary *int64  `json:"fixedSalary"`
	SalaryFrom  *int64  `json:"salaryFrom"`
	SalaryTo    *int64  `json:"salaryTo"`
	Expired     *bool   `json:"expired"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	employerOnly := middleware.RequireRole(user.RoleEmployer)

	r.Get("/getall", h.GetAll)
	r.Post("/post", h.Post, requireAuth, employerOnly)
	r.Get("/getmyjobs", h.GetMyJobs, requireAuth, employerOnly)
	r.Put("/update/:id", h.Update, requireAuth, employerOnly)
	r.Delete("/delete/:id", h.Delete, requireAuth, employerOnly)
	// Registered last so it cannot shadow the fixed paths above.
	r.Get("/:id", h.GetSingle)
}

func (h *JobHandler) GetAll(c fiber.Ctx) error {
	jobs, err := h.uc.ListActive(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Post(c.Context(), employerID, job.Input{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job Posted Successfully!", dto.NewJobResponse(created))
}

func (h *JobHandler) GetMyJobs(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	jobs, err := h.uc.MyJobs(c.Context(), employerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), employerID, c.Params("id"), job.Update{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Expired:     req.Expired,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job Updated!", dto.NewJobResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	if err := h.uc.Delete(c.Context(), employerID, c.Params("id")); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job Deleted!", nil)
}

func (h *JobHandler) GetSingle(c fiber.Ctx) error {
	j, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func mapJobError(err error) error {
	if err == nil {
		return nil
	}
	if usecase.IsValidationError(err) {
		return err
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "OOPS! Job not found.", nil, err)
	case errors.Is(err, usecase.ErrNotOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "You are not allowed to modify this job.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

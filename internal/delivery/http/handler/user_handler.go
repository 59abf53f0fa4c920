package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"
	ucauth "job-portal/internal/usecase/auth"
	useruc "job-portal/internal/usecase/user"
)

type UserHandler struct {
	auth      usecase.AuthUsecase
	users     *useruc.Service
	cookieTTL time.Duration
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func NewUserHandler(auth usecase.AuthUsecase, users *useruc.Service, cookieTTL time.Duration) *UserHandler {
	return &UserHandler{auth: auth, users: users, cookieTTL: cookieTTL}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Get("/logout", h.Logout, requireAuth)
	r.Get("/getuser", h.GetUser, requireAuth)
	r.Put("/update", h.Update, requireAuth)
}

func (h *UserHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, token, err := h.auth.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		return mapAuthError(err)
	}

	h.setTokenCookie(c, token)
	data := map[string]any{
		"user":  dto.NewUserResponse(usr),
		"token": token,
	}
	return response.Success(c, fiber.StatusCreated, "User Registered!", data)
}

func (h *UserHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, token, err := h.auth.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		return mapAuthError(err)
	}

	h.setTokenCookie(c, token)
	data := map[string]any{
		"user":  dto.NewUserResponse(usr),
		"token": token,
	}
	return response.Success(c, fiber.StatusOK, "User Logged In!", data)
}

func (h *UserHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Secure:   true,
	})
	return response.Success(c, fiber.StatusOK, "Logged Out Successfully.", nil)
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	usr, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(primitive.ObjectID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, err := h.users.UpdateMe(c.Context(), userID, useruc.UpdateMeInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if usecase.IsValidationError(err) {
			return err
		}
		switch {
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		case errors.Is(err, user.ErrDuplicateEmail), errors.Is(err, user.ErrDuplicatePhone):
			return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
		case errors.Is(err, useruc.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Nothing to update", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Profile Updated!", dto.NewUserResponse(usr))
}

func (h *UserHandler) setTokenCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Secure:   true,
	})
}

func mapAuthError(err error) error {
	if err == nil {
		return nil
	}
	if usecase.IsValidationError(err) {
		return err
	}

	switch {
	case errors.Is(err, user.ErrDuplicateEmail):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered!", nil, err)
	case errors.Is(err, user.ErrDuplicatePhone):
		return middleware.NewAppError(fiber.StatusConflict, "Phone number already registered!", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid Email Or Password.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

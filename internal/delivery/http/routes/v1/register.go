package v1

import (
	"github.com/gofiber/fiber/v3"

	"job-portal/internal/config"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/infrastructure/media"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/usecase"
	useruc "job-portal/internal/usecase/user"
)

// Deps is everything the v1 API needs from the container.
type Deps struct {
	Config config.Config

	Users        user.Repository
	Jobs         job.Repository
	Applications application.Repository

	Cache usecase.ListingCache
	Media media.Store
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(deps.Config.JWT.SecretKey, deps.Config.JWT.ExpiresIn)
	requireAuth := middleware.NewAuthMiddleware(jwtSvc).Middleware()

	authUC := usecase.NewAuthUsecase(deps.Users, jwtSvc)
	userSvc := useruc.NewService(deps.Users)
	jobUC := usecase.NewJobUsecase(deps.Jobs, deps.Cache, deps.Config.Redis.TTL)
	appUC := usecase.NewApplicationUsecase(deps.Applications, deps.Jobs, deps.Media)

	userHandler := handler.NewUserHandler(authUC, userSvc, deps.Config.JWT.ExpiresIn)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(appUC)

	userHandler.RegisterRoutes(r.Group("/user"), requireAuth)
	jobHandler.RegisterRoutes(r.Group("/job"), requireAuth)
	applicationHandler.RegisterRoutes(r.Group("/application"), requireAuth)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impacto-api/internal/application/auth"
	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/application/usecase"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ActivityUC    *usecase.ActivityUseCase
	ProfileUC     *usecase.ProfileUseCase
	DepartmentUC  *usecase.DepartmentUseCase
	OpportunityUC *usecase.OpportunityUseCase
	DashboardUC   *dashboard.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// El comité aprueba/rechaza y administra departamentos; el admin todo.
	reviewers := RequireRole(entity.RoleAdmin, entity.RoleComite)

	// Activities (protegido)
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Post("/", activityHandler.Create)
	activities.Get("/", activityHandler.List)
	activities.Get("/:id", activityHandler.GetByID)
	activities.Put("/:id", activityHandler.Update)
	activities.Post("/:id/submit", activityHandler.Submit)
	activities.Post("/:id/approve", reviewers, activityHandler.Approve)
	activities.Post("/:id/reject", reviewers, activityHandler.Reject)

	// Profiles (protegido)
	profiles := protected.Group("/profiles")
	profileHandler := NewProfileHandler(deps.ProfileUC, deps.AuthUC)
	profiles.Post("/", profileHandler.Create)
	profiles.Get("/", profileHandler.List)
	profiles.Get("/leaderboard", profileHandler.Leaderboard)
	profiles.Get("/:id", profileHandler.GetByID)
	profiles.Post("/:id/share", profileHandler.Share)
	profiles.Post("/:id/redeem", profileHandler.Redeem)
	profiles.Get("/:id/activities", activityHandler.ListByProfile)

	// Catálogo de premios (lectura).
	protected.Get("/rewards", profileHandler.Rewards)

	// Departments (protegido; mutaciones solo comité/admin)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", reviewers, departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Put("/:id/budget", reviewers, departmentHandler.UpdateBudget)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboardGroup := protected.Group("/dashboard")
	dashboardGroup.Get("/", dashboardHandler.Get)
	dashboardGroup.Post("/refresh", dashboardHandler.Refresh)
	dashboardGroup.Get("/report", dashboardHandler.Report)

	// Opportunities (protegido)
	opportunities := protected.Group("/opportunities")
	opportunityHandler := NewOpportunityHandler(deps.OpportunityUC)
	opportunities.Get("/", opportunityHandler.List)

	// Geo (protegido)
	geo := protected.Group("/geo")
	geo.Get("/pin", dashboardHandler.GeoPin)
}

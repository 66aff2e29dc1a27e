package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/analytics"
	"github.com/jhoicas/Estacion-api/internal/application/auth"
	"github.com/jhoicas/Estacion-api/internal/application/credit"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AttendanceUC *usecase.AttendanceUseCase
	LossUC       *usecase.LossUseCase
	AdvanceUC    *usecase.AdvanceUseCase
	SalaryUC     *usecase.SalaryUseCase
	CreditUC     *credit.CreditUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportUC     *analytics.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Cada grupo lleva el RequireRole que
// corresponde a la autoridad mínima de la operación; las lecturas "propias"
// quedan abiertas a todo rol autenticado y filtran por la identidad del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	admins := RequireRole(entity.RoleOwner, entity.RoleSupervisor)
	employees := RequireRole(entity.RoleOwner, entity.RoleSupervisor, entity.RoleDSM)
	ownerOnly := RequireRole(entity.RoleOwner)
	customerOnly := RequireRole(entity.RoleCustomer)

	// Auth: login público; logout y me requieren sesión viva.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.AuthUC), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.AuthUC), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token con sesión activa)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	// Attendance
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC, deps.AuthUC)
	attendance.Post("/punch", employees, attendanceHandler.Punch)
	attendance.Post("/manual", admins, attendanceHandler.ManualEntry)
	attendance.Get("/summary", admins, attendanceHandler.Summary)
	attendance.Get("/", employees, attendanceHandler.List)

	// Losses
	losses := protected.Group("/losses")
	lossHandler := NewLossHandler(deps.LossUC)
	losses.Post("/", admins, lossHandler.Create)
	losses.Get("/", admins, lossHandler.List)

	// Customers / credit
	customers := protected.Group("/customers")
	creditHandler := NewCreditHandler(deps.CreditUC)
	customers.Post("/debits", admins, creditHandler.CreateDebit)
	customers.Get("/me/transactions", customerOnly, creditHandler.MyHistory)
	customers.Get("/me/statement", customerOnly, creditHandler.MyStatement)
	customers.Get("/:id/balance", admins, creditHandler.Balance)
	customers.Get("/:id/statement", admins, creditHandler.DownloadStatement)
	customers.Get("/", admins, creditHandler.Overview)

	// Advances
	advances := protected.Group("/advances")
	advanceHandler := NewAdvanceHandler(deps.AdvanceUC, deps.AuthUC)
	advances.Post("/:id/approve", ownerOnly, advanceHandler.Approve)
	advances.Post("/:id/reject", ownerOnly, advanceHandler.Reject)
	advances.Post("/", employees, advanceHandler.Request)
	advances.Get("/", employees, advanceHandler.List)

	// Salaries
	salaries := protected.Group("/salaries")
	salaryHandler := NewSalaryHandler(deps.SalaryUC)
	salaries.Post("/", ownerOnly, salaryHandler.Create)
	salaries.Get("/totals", ownerOnly, salaryHandler.PayrollTotals)
	salaries.Get("/:id/payslip", employees, salaryHandler.DownloadPayslip)
	salaries.Get("/", employees, salaryHandler.List)

	// Dashboard y reportes
	reportHandler := NewReportHandler(deps.DashboardUC, deps.ReportUC)
	protected.Get("/dashboard/summary", reportHandler.DashboardSummary)
	reports := protected.Group("/reports")
	reports.Get("/monthly/export", ownerOnly, reportHandler.Export)
	reports.Get("/monthly", admins, reportHandler.Monthly)
}

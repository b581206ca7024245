// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"migym_backend/internals/constants"
	accessController "migym_backend/internals/features/access/controller"
	billingController "migym_backend/internals/features/billing/controller"
	clientController "migym_backend/internals/features/clients/controller"
	employeeController "migym_backend/internals/features/employees/controller"
	facilityController "migym_backend/internals/features/facilities/controller"
	inventoryController "migym_backend/internals/features/inventory/controller"
	maintenanceController "migym_backend/internals/features/maintenance/controller"
	rbacController "migym_backend/internals/features/rbac/controller"
	membershipController "migym_backend/internals/features/memberships/controller"
	activityController "migym_backend/internals/features/scheduling/activity/controller"
	reservationController "migym_backend/internals/features/scheduling/reservation/controller"
	scheduleController "migym_backend/internals/features/scheduling/schedule/controller"
	sessionController "migym_backend/internals/features/scheduling/session/controller"
	authController "migym_backend/internals/features/users/auth/controller"
	userController "migym_backend/internals/features/users/user/controller"
	"migym_backend/internals/middlewares"
	authMw "migym_backend/internals/middlewares/auth"
)

// SetupRoutes registra todo el árbol de rutas de la API.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	authCtl := authController.New(db, validate)
	userCtl := userController.New(db, validate)
	siteCtl := facilityController.NewSite(db, validate)
	roomCtl := facilityController.NewRoom(db, validate)
	employeeCtl := employeeController.New(db, validate)
	trainerCtl := employeeController.NewTrainer(db, validate)
	clientCtl := clientController.New(db, validate)
	planCtl := membershipController.NewPlan(db, validate)
	subscriptionCtl := membershipController.NewSubscription(db, validate)
	accessCtl := accessController.New(db, validate)
	activityCtl := activityController.New(db, validate)
	scheduleCtl := scheduleController.New(db, validate)
	sessionCtl := sessionController.New(db, validate)
	reservationCtl := reservationController.New(db, validate)
	productCtl := inventoryController.NewProduct(db, validate)
	assetCtl := inventoryController.NewAsset(db, validate)
	invoiceCtl := billingController.New(db, validate)
	paymentCtl := billingController.NewPayment(db, validate)
	maintenanceCtl := maintenanceController.New(db, validate)
	rbacCtl := rbacController.New(db, validate)

	api := app.Group("/api")

	/* ===================== Público ===================== */

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), authCtl.GoogleLogin)
	auth.Post("/refresh-token", authCtl.RefreshToken)

	api.Post("/clients/self-register", middlewares.RegisterRateLimiter(), clientCtl.SelfRegister)

	// webhook de la pasarela, sin auth (va en la lista de skip del middleware)
	api.Post("/billing/midtrans/notification", paymentCtl.HandleNotification)

	/* ===================== Protegido ===================== */

	api.Use(authMw.AuthMiddleware(db))

	auth.Post("/logout", authCtl.Logout)
	auth.Get("/me", authCtl.Me)

	// usuarios y personas (solo admin)
	users := api.Group("/users", authMw.RequirePermission(constants.PermUsersManage))
	users.Get("/", userCtl.List)
	users.Get("/:id", userCtl.GetByID)
	users.Patch("/:id", userCtl.Patch)
	users.Delete("/:id", userCtl.Delete)

	// roles y permisos (solo admin)
	rbac := api.Group("/rbac", authMw.RequirePermission(constants.PermRBACManage))
	rbac.Post("/roles", rbacCtl.CreateRole)
	rbac.Get("/roles", rbacCtl.ListRoles)
	rbac.Patch("/roles/:id", rbacCtl.PatchRole)
	rbac.Delete("/roles/:id", rbacCtl.DeleteRole)
	rbac.Get("/permissions", rbacCtl.ListPermissions)
	rbac.Post("/person-roles", rbacCtl.AssignRole)
	rbac.Delete("/person-roles", rbacCtl.RevokeRole)
	rbac.Post("/role-permissions", rbacCtl.GrantPermission)
	rbac.Delete("/role-permissions", rbacCtl.RevokePermission)

	// sedes y espacios
	facilities := api.Group("/facilities", authMw.RequirePermission(constants.PermFacilitiesManage))
	facilities.Post("/sites", siteCtl.Create)
	facilities.Get("/sites", siteCtl.List)
	facilities.Get("/sites/:id", siteCtl.GetByID)
	facilities.Patch("/sites/:id", siteCtl.Patch)
	facilities.Patch("/sites/:id/toggle-active", siteCtl.ToggleActive)
	facilities.Delete("/sites/:id", siteCtl.Delete)
	facilities.Post("/rooms", roomCtl.Create)
	facilities.Get("/rooms", roomCtl.List)
	facilities.Patch("/rooms/:id", roomCtl.Patch)
	facilities.Patch("/rooms/:id/toggle-active", roomCtl.ToggleActive)
	facilities.Delete("/rooms/:id", roomCtl.Delete)
	facilities.Post("/rooms/assign-trainer", roomCtl.AssignTrainer)
	facilities.Post("/rooms/unassign-trainer", roomCtl.UnassignTrainer)

	// empleados y entrenadores
	employees := api.Group("/employees", authMw.RequirePermission(constants.PermEmployeesManage))
	employees.Post("/", employeeCtl.Create)
	employees.Get("/", employeeCtl.List)
	employees.Get("/:id", employeeCtl.GetByID)
	employees.Patch("/:id", employeeCtl.Patch)
	employees.Delete("/:id", employeeCtl.Delete)
	employees.Post("/:id/documents", employeeCtl.UploadDocument)
	employees.Get("/:id/documents", employeeCtl.ListDocuments)
	employees.Get("/documents/:doc_id/download", employeeCtl.DownloadDocument)

	trainers := api.Group("/trainers", authMw.RequirePermission(constants.PermEmployeesManage))
	trainers.Post("/", trainerCtl.Create)
	trainers.Get("/", trainerCtl.List)
	trainers.Get("/:id", trainerCtl.GetByID)
	trainers.Patch("/:id", trainerCtl.Patch)
	trainers.Delete("/:id", trainerCtl.Delete)

	// clientes
	clients := api.Group("/clients", authMw.RequirePermission(constants.PermClientsManage))
	clients.Post("/", clientCtl.Create)
	clients.Get("/", clientCtl.List)
	clients.Get("/:id", clientCtl.GetByID)
	clients.Patch("/:id", clientCtl.Patch)
	clients.Delete("/:id", clientCtl.Delete)
	clients.Post("/:id/photo", clientCtl.UploadPhoto)

	// planes y suscripciones
	memberships := api.Group("/memberships", authMw.RequirePermission(constants.PermMembershipsManage))
	memberships.Post("/plans", planCtl.Create)
	memberships.Get("/plans", planCtl.List)
	memberships.Get("/plans/:id", planCtl.GetByID)
	memberships.Patch("/plans/:id", planCtl.Patch)
	memberships.Delete("/plans/:id", planCtl.Delete)
	memberships.Post("/subscriptions", subscriptionCtl.Create)
	memberships.Get("/subscriptions", subscriptionCtl.List)
	memberships.Get("/subscriptions/:id", subscriptionCtl.GetByID)
	memberships.Patch("/subscriptions/:id/status", subscriptionCtl.ChangeStatus)

	// control de acceso (torniquete)
	access := api.Group("/access", authMw.RequirePermission(constants.PermAccessValidate))
	access.Post("/check", accessCtl.Check)
	access.Get("/logs", accessCtl.Logs)

	// actividades y horarios
	activities := api.Group("/activities", authMw.RequirePermission(constants.PermSchedulesManage))
	activities.Post("/", activityCtl.Create)
	activities.Get("/", activityCtl.List)
	activities.Get("/:id", activityCtl.GetByID)
	activities.Patch("/:id", activityCtl.Patch)
	activities.Delete("/:id", activityCtl.Delete)

	schedules := api.Group("/schedules", authMw.RequirePermission(constants.PermSchedulesManage))
	schedules.Post("/", scheduleCtl.Create)
	schedules.Get("/", scheduleCtl.List)
	// bloqueos por entrenador/espacio, antes de las rutas :id
	schedules.Post("/blocks", scheduleCtl.AddBlock)
	schedules.Get("/blocks", scheduleCtl.ListBlocks)
	schedules.Delete("/blocks/:block_id", scheduleCtl.RemoveBlock)
	schedules.Get("/:id", scheduleCtl.GetByID)
	schedules.Patch("/:id", scheduleCtl.Patch)
	schedules.Delete("/:id", scheduleCtl.Delete)
	schedules.Post("/:id/generate-sessions", scheduleCtl.GenerateSessions)

	// sesiones: consulta abierta a cualquier usuario autenticado,
	// gestión solo con permiso
	api.Get("/sessions", sessionCtl.List)
	api.Get("/sessions/:id", sessionCtl.GetByID)
	sessions := api.Group("/sessions", authMw.RequirePermission(constants.PermSessionsManage))
	sessions.Patch("/:id/overrides", sessionCtl.PatchOverrides)
	sessions.Patch("/:id/status", sessionCtl.ChangeStatus)

	// reservas: crear/cancelar abiertas (el controlador limita al propio
	// cliente), listados y asistencia para staff
	api.Post("/reservations", reservationCtl.Create)
	api.Get("/reservations/mine", reservationCtl.Mine)
	api.Patch("/reservations/:id/cancel", reservationCtl.Cancel)
	reservations := api.Group("/reservations", authMw.RequirePermission(constants.PermReservationsManage))
	reservations.Get("/", reservationCtl.List)
	reservations.Patch("/:id/attendance", reservationCtl.MarkAttendance)

	// inventario
	inventory := api.Group("/inventory", authMw.RequirePermission(constants.PermInventoryManage))
	inventory.Post("/products", productCtl.Create)
	inventory.Get("/products", productCtl.List)
	inventory.Get("/products/:id", productCtl.GetByID)
	inventory.Patch("/products/:id", productCtl.Patch)
	inventory.Post("/products/:id/adjust-stock", productCtl.AdjustStock)
	inventory.Get("/products/:id/movements", productCtl.ListMovements)
	inventory.Delete("/products/:id", productCtl.Delete)
	inventory.Post("/assets", assetCtl.Create)
	inventory.Get("/assets", assetCtl.List)
	inventory.Get("/assets/:id", assetCtl.GetByID)
	inventory.Patch("/assets/:id", assetCtl.Patch)
	inventory.Patch("/assets/:id/retire", assetCtl.Retire)
	inventory.Post("/assets/:id/photo", assetCtl.UploadPhoto)

	// facturación
	billing := api.Group("/billing", authMw.RequirePermission(constants.PermBillingManage))
	billing.Post("/invoices", invoiceCtl.Create)
	billing.Get("/invoices", invoiceCtl.List)
	billing.Get("/invoices/:id", invoiceCtl.GetByID)
	billing.Get("/invoices/:id/pdf", invoiceCtl.DownloadPDF)
	billing.Patch("/invoices/:id/cancel", invoiceCtl.Cancel)
	billing.Post("/invoices/:id/payments", paymentCtl.RecordManual)
	billing.Post("/invoices/:id/checkout", paymentCtl.CreateCheckout)
	billing.Get("/payments/:payment_id/receipt", paymentCtl.DownloadReceipt)

	// mantenimiento de activos
	maintenance := api.Group("/maintenance", authMw.RequirePermission(constants.PermMaintenanceManage))
	maintenance.Post("/", maintenanceCtl.Create)
	maintenance.Get("/", maintenanceCtl.List)
	maintenance.Get("/:id", maintenanceCtl.GetByID)
	maintenance.Patch("/:id/start", maintenanceCtl.Start)
	maintenance.Patch("/:id/complete", maintenanceCtl.Complete)
	maintenance.Patch("/:id/abort", maintenanceCtl.Abort)

	log.Println("[INFO] Rutas registradas ✅")
}

package constants

import "fmt"

// Roles del sistema
const (
	RoleAdmin     = "admin"
	RoleManager   = "gerente"
	RoleReception = "recepcion"
	RoleTrainer   = "entrenador"
	RoleClient    = "cliente"
)

// Códigos de permiso (role_permissions.permission_code)
const (
	PermUsersManage        = "users.manage"
	PermEmployeesManage    = "employees.manage"
	PermClientsManage      = "clients.manage"
	PermFacilitiesManage   = "facilities.manage"
	PermMembershipsManage  = "memberships.manage"
	PermAccessValidate     = "access.validate"
	PermSchedulesManage    = "schedules.manage"
	PermSessionsManage     = "sessions.manage"
	PermReservationsManage = "reservations.manage"
	PermInventoryManage    = "inventory.manage"
	PermBillingManage      = "billing.manage"
	PermMaintenanceManage  = "maintenance.manage"
	PermRBACManage         = "rbac.manage"
)

// Template de mensajes de error por rol
const (
	ErrOnlyStaffCanAccess  = "❌ Solo el personal puede acceder a %s."
	ErrOnlyAdminsCanAccess = "❌ Solo un administrador puede acceder a %s."
	ErrMissingPermission   = "❌ No tienes el permiso %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func PermissionError(code string) string {
	return fmt.Sprintf(ErrMissingPermission, code)
}

// Grupos de roles usados por las rutas
var (
	StaffRoles     = []string{RoleAdmin, RoleManager, RoleReception}
	StaffAndCoach  = []string{RoleAdmin, RoleManager, RoleReception, RoleTrainer}
	AdminOnlyRoles = []string{RoleAdmin}
)

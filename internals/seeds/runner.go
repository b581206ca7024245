// file: internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"migym_backend/internals/constants"
	rbacModel "migym_backend/internals/features/rbac/model"
	authService "migym_backend/internals/features/users/auth/service"
	userModel "migym_backend/internals/features/users/user/model"
)

// permisos que recibe cada rol al sembrar
var rolePermissions = map[string][]string{
	constants.RoleAdmin: {
		constants.PermUsersManage, constants.PermEmployeesManage, constants.PermClientsManage,
		constants.PermFacilitiesManage, constants.PermMembershipsManage, constants.PermAccessValidate,
		constants.PermSchedulesManage, constants.PermSessionsManage, constants.PermReservationsManage,
		constants.PermInventoryManage, constants.PermBillingManage, constants.PermMaintenanceManage,
		constants.PermRBACManage,
	},
	constants.RoleManager: {
		constants.PermEmployeesManage, constants.PermClientsManage, constants.PermFacilitiesManage,
		constants.PermMembershipsManage, constants.PermAccessValidate, constants.PermSchedulesManage,
		constants.PermSessionsManage, constants.PermReservationsManage, constants.PermInventoryManage,
		constants.PermBillingManage, constants.PermMaintenanceManage,
	},
	constants.RoleReception: {
		constants.PermClientsManage, constants.PermMembershipsManage, constants.PermAccessValidate,
		constants.PermReservationsManage, constants.PermBillingManage,
	},
	constants.RoleTrainer: {
		constants.PermSessionsManage, constants.PermReservationsManage,
	},
	constants.RoleClient: {},
}

// RunAllSeeds siembra roles, permisos y el usuario admin inicial. Todas las
// operaciones son idempotentes, se puede correr en cada arranque.
func RunAllSeeds(db *gorm.DB) {
	if err := seedRolesAndPermissions(db); err != nil {
		log.Println("[ERROR] seed de roles/permisos:", err)
		return
	}
	if err := seedAdminUser(db); err != nil {
		log.Println("[ERROR] seed de usuario admin:", err)
		return
	}
	log.Println("[INFO] Seeds aplicados ✅")
}

func seedRolesAndPermissions(db *gorm.DB) error {
	for roleName, codes := range rolePermissions {
		var role rbacModel.RoleModel
		err := db.Where("role_name = ?", roleName).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = rbacModel.RoleModel{RoleName: roleName}
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, code := range codes {
			var perm rbacModel.PermissionModel
			err := db.Where("permission_code = ?", code).First(&perm).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				perm = rbacModel.PermissionModel{PermissionCode: code}
				if err := db.Create(&perm).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			var count int64
			if err := db.Model(&rbacModel.RolePermissionModel{}).
				Where("role_permission_role_id = ? AND role_permission_permission_id = ?", role.RoleID, perm.PermissionID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				link := rbacModel.RolePermissionModel{
					RolePermissionRoleID:       role.RoleID,
					RolePermissionPermissionID: perm.PermissionID,
				}
				if err := db.Create(&link).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// seedAdminUser crea la cuenta admin inicial si no existe. Credenciales por
// entorno: ADMIN_EMAIL y ADMIN_PASSWORD.
func seedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[WARN] ADMIN_EMAIL/ADMIN_PASSWORD no configurados, se omite el seed de admin")
		return nil
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		person := userModel.PersonModel{
			PersonFirstName: "Admin",
			PersonLastName:  "Sistema",
			PersonEmail:     email,
		}
		if er := tx.Create(&person).Error; er != nil {
			return er
		}
		user := userModel.UserModel{
			UserName:     "Admin Sistema",
			UserEmail:    email,
			UserPassword: hashed,
			UserPersonID: &person.PersonID,
			UserIsActive: true,
		}
		if er := tx.Create(&user).Error; er != nil {
			return er
		}

		var role rbacModel.RoleModel
		if er := tx.Where("role_name = ?", constants.RoleAdmin).First(&role).Error; er != nil {
			return er
		}
		link := rbacModel.PersonRoleModel{
			PersonRolePersonID: person.PersonID,
			PersonRoleRoleID:   role.RoleID,
		}
		return tx.Create(&link).Error
	})
}

// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "migym_backend/internals/features/users/auth/dto"
	authService "migym_backend/internals/features/users/auth/service"
	userModel "migym_backend/internals/features/users/user/model"
	helper "migym_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* ========================= Register ========================= */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// email duplicado → 400 nombrando el campo
	var count int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonFieldErrors(c, map[string][]string{
			"email": {"ya existe un usuario con este email"},
		})
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	var user userModel.UserModel

	// persona + usuario en una sola transacción
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		person := userModel.PersonModel{
			PersonFirstName: req.FirstName,
			PersonLastName:  req.LastName,
			PersonEmail:     req.Email,
			PersonPhone:     req.Phone,
		}
		if er := tx.Create(&person).Error; er != nil {
			return er
		}
		user = userModel.UserModel{
			UserName:     req.UserName,
			UserEmail:    req.Email,
			UserPassword: hashed,
			UserPersonID: &person.PersonID,
			UserIsActive: true,
		}
		return tx.Create(&user).Error
	}); err != nil {
		log.Printf("[Auth.Register] tx error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la cuenta")
	}

	return helper.JsonCreated(c, "Cuenta creada", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
	})
}

/* ========================= Login ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}
	if !authService.CheckPassword(user.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	access, err := authService.IssueTokenPair(ctl.DB, c, &user)
	if err != nil {
		log.Printf("[Auth.Login] issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	roles, _ := c.Locals("roles").([]string)
	return helper.JsonOK(c, "Login correcto", d.LoginResponse{
		AccessToken: access,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		Roles:       roles,
	})
}

/* ========================= Google Login ========================= */

func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req d.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ident, err := authService.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "id_token inválido")
	}

	var user userModel.UserModel
	err = ctl.DB.Where("user_google_id = ? OR user_email = ?", ident.GoogleID, ident.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No existe una cuenta para este email")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	// liga el google_id la primera vez
	if user.UserGoogleID == nil {
		_ = ctl.DB.Model(&user).Update("user_google_id", ident.GoogleID).Error
	}

	access, err := authService.IssueTokenPair(ctl.DB, c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	return helper.JsonOK(c, "Login correcto", fiber.Map{
		"access_token": access,
		"user_id":      user.UserID,
	})
}

/* ========================= Refresh / Logout / Me ========================= */

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctl.DB, c)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Authorization header faltante")
	}
	if err := authService.Logout(ctl.DB, c, strings.TrimSpace(parts[1])); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cerrar la sesión")
	}
	return helper.JsonOK(c, "Sesión cerrada", nil)
}

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var user userModel.UserModel
	if err := ctl.DB.Preload("Person").Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"user":  user,
		"roles": helper.GetRolesFromContext(c),
	})
}

// file: internals/features/clients/controller/client_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"migym_backend/internals/constants"
	d "migym_backend/internals/features/clients/dto"
	m "migym_backend/internals/features/clients/model"
	rbacModel "migym_backend/internals/features/rbac/model"
	authService "migym_backend/internals/features/users/auth/service"
	userModel "migym_backend/internals/features/users/user/model"
	helper "migym_backend/internals/helpers"
)

type ClientController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClientController {
	return &ClientController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *ClientController) emailTaken(email string) (bool, error) {
	var count int64
	err := ctl.DB.Model(&userModel.PersonModel{}).
		Where("person_email = ?", email).
		Count(&count).Error
	return count > 0, err
}

/* ========================= Alta en recepción ========================= */

func (ctl *ClientController) Create(c *fiber.Ctx) error {
	var req d.ClientCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := ctl.emailTaken(req.Email)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if taken {
		return helper.JsonFieldErrors(c, map[string][]string{
			"email": {"ya existe una persona con este email"},
		})
	}

	var client *m.ClientModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		person := req.ToPersonModel()
		if er := tx.Create(person).Error; er != nil {
			return er
		}
		client = req.ToModel(person.PersonID)
		return tx.Create(client).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Cliente creado", client)
}

/* ========================= Auto-registro ========================= */

// SelfRegister crea persona + cuenta de usuario + cliente en una sola
// transacción y asigna el rol cliente.
func (ctl *ClientController) SelfRegister(c *fiber.Ctx) error {
	var req d.ClientSelfRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := ctl.emailTaken(req.Email)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if taken {
		return helper.JsonFieldErrors(c, map[string][]string{
			"email": {"ya existe una persona con este email"},
		})
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	var client *m.ClientModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		person := req.ToPersonModel()
		if er := tx.Create(person).Error; er != nil {
			return er
		}

		user := userModel.UserModel{
			UserName:     person.FullName(),
			UserEmail:    req.Email,
			UserPassword: hashed,
			UserPersonID: &person.PersonID,
			UserIsActive: true,
		}
		if er := tx.Create(&user).Error; er != nil {
			return er
		}

		var role rbacModel.RoleModel
		if er := tx.Where("role_name = ?", constants.RoleClient).First(&role).Error; er != nil {
			return er
		}
		personRole := rbacModel.PersonRoleModel{
			PersonRolePersonID: person.PersonID,
			PersonRoleRoleID:   role.RoleID,
		}
		if er := tx.Create(&personRole).Error; er != nil {
			return er
		}

		client = req.ToModel(person.PersonID)
		return tx.Create(client).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Registro completado", client)
}

/* ========================= List / Detail ========================= */

func (ctl *ClientController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"created_at": "client_created_at",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.ClientModel{}).
		Joins("JOIN persons ON persons.person_id = clients.client_person_id")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"persons.person_first_name ILIKE ? OR persons.person_last_name ILIKE ? OR persons.person_email ILIKE ?",
			like, like, like,
		)
	}
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("client_home_site_id = ?", siteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var clients []m.ClientModel
	if err := q.Preload("Person").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&clients).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", clients, &pg)
}

func (ctl *ClientController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var client m.ClientModel
	if err := ctl.DB.Preload("Person").Where("client_id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", client)
}

/* ========================= Patch / Delete ========================= */

func (ctl *ClientController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var client m.ClientModel
	if err := ctl.DB.Where("client_id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.ClientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&client)

	if err := ctl.DB.Save(&client).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Cliente actualizado", client)
}

func (ctl *ClientController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("client_id = ?", id).Delete(&m.ClientModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
	}
	return helper.JsonDeleted(c)
}

/* ========================= Foto ========================= */

func (ctl *ClientController) UploadPhoto(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var client m.ClientModel
	if err := ctl.DB.Where("client_id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file es requerido")
	}
	data, name, err := helper.ConvertImageToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	relPath, err := helper.SaveBytes("clients", name, data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	old := client.ClientPhotoPath
	client.ClientPhotoPath = &relPath
	if err := ctl.DB.Save(&client).Error; err != nil {
		helper.DeleteStoredFile(relPath)
		return helper.WritePGError(c, err)
	}
	if old != nil {
		helper.DeleteStoredFile(*old)
	}
	return helper.JsonUpdated(c, "Foto actualizada", client)
}

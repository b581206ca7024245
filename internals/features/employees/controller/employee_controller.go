// file: internals/features/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/employees/dto"
	m "migym_backend/internals/features/employees/model"
	userModel "migym_backend/internals/features/users/user/model"
	helper "migym_backend/internals/helpers"
)

type EmployeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *EmployeeController {
	return &EmployeeController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	var req d.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// email duplicado → 400 nombrando el campo
	var count int64
	if err := ctl.DB.Model(&userModel.PersonModel{}).
		Where("person_email = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if count > 0 {
		return helper.JsonFieldErrors(c, map[string][]string{
			"email": {"ya existe una persona con este email"},
		})
	}

	var employee *m.EmployeeModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		person := req.ToPersonModel()
		if er := tx.Create(person).Error; er != nil {
			return er
		}
		employee = req.ToModel(person.PersonID)
		return tx.Create(employee).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Empleado creado", employee)
}

/* ========================= List / Detail ========================= */

func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"created_at": "employee_created_at",
		"position":   "employee_position",
		"hire_date":  "employee_hire_date",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.EmployeeModel{})
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("employee_site_id = ?", siteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var employees []m.EmployeeModel
	if err := q.Preload("Person").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&employees).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", employees, &pg)
}

func (ctl *EmployeeController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var employee m.EmployeeModel
	if err := ctl.DB.Preload("Person").Where("employee_id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", employee)
}

/* ========================= Patch ========================= */

func (ctl *EmployeeController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var existing m.EmployeeModel
	if err := ctl.DB.Where("employee_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&existing)

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Empleado actualizado", existing)
}

/* ========================= Delete ========================= */

func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("employee_id = ?", id).Delete(&m.EmployeeModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
	}
	return helper.JsonDeleted(c)
}

/* ========================= Documentos ========================= */

// UploadDocument recibe multipart (kind + file); las fotos se convierten a
// webp, el resto se guarda tal cual en disco.
func (ctl *EmployeeController) UploadDocument(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var employee m.EmployeeModel
	if err := ctl.DB.Where("employee_id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	kind := m.EmployeeDocumentKind(strings.ToLower(strings.TrimSpace(c.FormValue("kind"))))
	switch kind {
	case m.DocIDCard, m.DocProofOfAddress, m.DocCertificate, m.DocPhoto:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "kind inválido")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file es requerido")
	}

	var relPath string
	if kind == m.DocPhoto {
		data, name, er := helper.ConvertImageToWebP(fileHeader)
		if er != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, er.Error())
		}
		relPath, er = helper.SaveBytes("employees", name, data)
		if er != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, er.Error())
		}
	} else {
		relPath, err = helper.SaveUploadedFile("employees", fileHeader)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	doc := m.EmployeeDocumentModel{
		EmployeeDocumentEmployeeID:   employee.EmployeeID,
		EmployeeDocumentKind:         kind,
		EmployeeDocumentPath:         relPath,
		EmployeeDocumentOriginalName: fileHeader.Filename,
	}
	if err := ctl.DB.Create(&doc).Error; err != nil {
		helper.DeleteStoredFile(relPath)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Documento subido", doc)
}

func (ctl *EmployeeController) ListDocuments(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var docs []m.EmployeeDocumentModel
	if err := ctl.DB.
		Where("employee_document_employee_id = ?", id).
		Order("employee_document_created_at DESC").
		Find(&docs).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", docs)
}

// DownloadDocument sirve el archivo desde disco (entorno dev).
func (ctl *EmployeeController) DownloadDocument(c *fiber.Ctx) error {
	docID, err := parseUUIDParam(c, "doc_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var doc m.EmployeeDocumentModel
	if err := ctl.DB.Where("employee_document_id = ?", docID).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Documento no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return c.SendFile(helper.AbsolutePath(doc.EmployeeDocumentPath))
}

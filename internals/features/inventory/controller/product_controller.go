// file: internals/features/inventory/controller/product_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/inventory/dto"
	m "migym_backend/internals/features/inventory/model"
	helper "migym_backend/internals/helpers"
)

type ProductController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProduct(db *gorm.DB, v *validator.Validate) *ProductController {
	return &ProductController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *ProductController) Create(c *fiber.Ctx) error {
	var req d.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	product := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(product).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Producto creado", product)
}

func (ctl *ProductController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)
	allowed := map[string]string{
		"name":       "product_name",
		"price":      "product_price",
		"stock":      "product_stock",
		"created_at": "product_created_at",
	}
	order, err := p.SafeOrderClause(allowed, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.ProductModel{})
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("product_site_id = ?", siteID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("product_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var products []m.ProductModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&products).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", products, &pg)
}

func (ctl *ProductController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var product m.ProductModel
	if err := ctl.DB.Where("product_id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Producto no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", product)
}

func (ctl *ProductController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var product m.ProductModel
	if err := ctl.DB.Where("product_id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Producto no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&product)

	if err := ctl.DB.Save(&product).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Producto actualizado", product)
}

// AdjustStock aplica un delta auditado: el stock resultante nunca queda
// negativo y cada ajuste deja un movimiento.
func (ctl *ProductController) AdjustStock(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.StockAdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var product m.ProductModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Clauses(clauseLockForUpdate()).
			Where("product_id = ?", id).First(&product).Error; er != nil {
			return er
		}
		if product.ProductStock+req.Delta < 0 {
			return errInsufficientStock
		}
		product.ProductStock += req.Delta
		if er := tx.Save(&product).Error; er != nil {
			return er
		}
		movement := m.StockMovementModel{
			StockMovementProductID: product.ProductID,
			StockMovementDelta:     req.Delta,
			StockMovementReason:    req.Reason,
		}
		return tx.Create(&movement).Error
	}); err != nil {
		if errors.Is(err, errInsufficientStock) {
			return helper.JsonError(c, fiber.StatusConflict, "Stock insuficiente para ese ajuste")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Producto no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Stock ajustado", product)
}

func (ctl *ProductController) ListMovements(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var movements []m.StockMovementModel
	if err := ctl.DB.
		Where("stock_movement_product_id = ?", id).
		Order("stock_movement_created_at DESC").
		Limit(200).
		Find(&movements).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", movements)
}

func (ctl *ProductController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("product_id = ?", id).Delete(&m.ProductModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Producto no encontrado")
	}
	return helper.JsonDeleted(c)
}

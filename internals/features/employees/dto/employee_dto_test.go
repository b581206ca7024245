// file: internals/features/employees/dto/employee_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "migym_backend/internals/features/employees/model"
)

func TestEmployeeCreateNormalize(t *testing.T) {
	phone := "  555-0101 "
	r := EmployeeCreateRequest{
		FirstName: "  Ana ",
		LastName:  " García ",
		Email:     " Ana.Garcia@Gym.MX ",
		Phone:     &phone,
		Position:  "  recepcionista ",
	}
	r.Normalize()

	assert.Equal(t, "Ana", r.FirstName)
	assert.Equal(t, "García", r.LastName)
	assert.Equal(t, "ana.garcia@gym.mx", r.Email)
	assert.Equal(t, "recepcionista", *r.Phone)
	assert.Equal(t, "recepcionista", r.Position)
}

func TestEmployeeCreateNormalizeDropsEmptyPhone(t *testing.T) {
	blank := "   "
	r := EmployeeCreateRequest{Phone: &blank}
	r.Normalize()
	assert.Nil(t, r.Phone)
}

func TestEmployeeUpdateApplyPartial(t *testing.T) {
	siteID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	hire := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	emp := &m.EmployeeModel{
		EmployeeSiteID:   siteID,
		EmployeePosition: "entrenador",
		EmployeeSalary:   18000,
		EmployeeHireDate: hire,
		EmployeeIsActive: true,
	}

	newSalary := 21000.0
	EmployeeUpdateRequest{Salary: &newSalary}.Apply(emp)

	// el resto de campos queda intacto
	assert.Equal(t, 21000.0, emp.EmployeeSalary)
	assert.Equal(t, siteID, emp.EmployeeSiteID)
	assert.Equal(t, "entrenador", emp.EmployeePosition)
	assert.Equal(t, hire, emp.EmployeeHireDate)
	assert.True(t, emp.EmployeeIsActive)
}

func TestEmployeeUpdateApplyAll(t *testing.T) {
	emp := &m.EmployeeModel{EmployeePosition: "recepcionista", EmployeeIsActive: true}

	newSite := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	position := "  gerente de sede  "
	inactive := false
	EmployeeUpdateRequest{
		SiteID:   &newSite,
		Position: &position,
		IsActive: &inactive,
	}.Apply(emp)

	assert.Equal(t, newSite, emp.EmployeeSiteID)
	assert.Equal(t, "gerente de sede", emp.EmployeePosition)
	assert.False(t, emp.EmployeeIsActive)
}

func TestTrainerUpdateApply(t *testing.T) {
	tr := &m.TrainerModel{
		TrainerSpecialty:      "crossfit",
		TrainerCertifications: []string{"cert-a"},
		TrainerIsActive:       true,
	}

	certs := []string{"cert-a", "cert-b"}
	TrainerUpdateRequest{Certifications: &certs}.Apply(tr)

	assert.Equal(t, "crossfit", tr.TrainerSpecialty)
	assert.Len(t, tr.TrainerCertifications, 2)
	assert.True(t, tr.TrainerIsActive)
}

// file: internals/features/memberships/model/membership_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	facilityModel "migym_backend/internals/features/facilities/model"
)

func TestSubscriptionIsValidOn(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	sub := func(status SubscriptionStatus) *SubscriptionModel {
		return &SubscriptionModel{
			SubscriptionStatus:    status,
			SubscriptionStartDate: start,
			SubscriptionEndDate:   end,
		}
	}

	t.Run("día intermedio", func(t *testing.T) {
		assert.True(t, sub(SubscriptionActive).IsValidOn(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("primer y último día inclusive", func(t *testing.T) {
		s := sub(SubscriptionActive)
		assert.True(t, s.IsValidOn(start))
		assert.True(t, s.IsValidOn(end))
	})

	t.Run("último día a cualquier hora", func(t *testing.T) {
		assert.True(t, sub(SubscriptionActive).IsValidOn(time.Date(2026, 1, 31, 22, 15, 0, 0, time.UTC)))
	})

	t.Run("fuera del rango", func(t *testing.T) {
		s := sub(SubscriptionActive)
		assert.False(t, s.IsValidOn(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
		assert.False(t, s.IsValidOn(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("estados no activos nunca valen", func(t *testing.T) {
		mid := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		assert.False(t, sub(SubscriptionSuspended).IsValidOn(mid))
		assert.False(t, sub(SubscriptionCancelled).IsValidOn(mid))
		assert.False(t, sub(SubscriptionExpired).IsValidOn(mid))
	})
}

func TestPlanCoversSite(t *testing.T) {
	siteA := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	siteB := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")

	t.Run("all_sites cubre cualquier sede", func(t *testing.T) {
		p := &MembershipPlanModel{MembershipPlanAllSites: true}
		assert.True(t, p.CoversSite(siteA))
		assert.True(t, p.CoversSite(siteB))
	})

	t.Run("plan restringido solo cubre sus sedes", func(t *testing.T) {
		p := &MembershipPlanModel{
			Sites: []facilityModel.SiteModel{{SiteID: siteA}},
		}
		assert.True(t, p.CoversSite(siteA))
		assert.False(t, p.CoversSite(siteB))
	})

	t.Run("sin sedes cargadas no cubre nada", func(t *testing.T) {
		p := &MembershipPlanModel{}
		assert.False(t, p.CoversSite(siteA))
	})
}

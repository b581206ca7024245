// file: internals/features/memberships/service/subscription_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "migym_backend/internals/features/memberships/model"
)

var ErrNoActiveSubscription = errors.New("el cliente no tiene una suscripción vigente")

// FindValidSubscription busca la suscripción del cliente vigente en la fecha
// dada. Devuelve ErrNoActiveSubscription cuando no hay cobertura.
func FindValidSubscription(ctx context.Context, db *gorm.DB, clientID uuid.UUID, day time.Time) (*m.SubscriptionModel, error) {
	var subs []m.SubscriptionModel
	if err := db.WithContext(ctx).
		Preload("Plan.Sites").
		Where("subscription_client_id = ? AND subscription_status = ?", clientID, m.SubscriptionActive).
		Order("subscription_end_date DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].IsValidOn(day) {
			return &subs[i], nil
		}
	}
	return nil, ErrNoActiveSubscription
}

// HasValidSubscriptionForSite aplica además el alcance de sedes del plan.
func HasValidSubscriptionForSite(ctx context.Context, db *gorm.DB, clientID, siteID uuid.UUID, day time.Time) (*m.SubscriptionModel, error) {
	sub, err := FindValidSubscription(ctx, db, clientID, day)
	if err != nil {
		return nil, err
	}
	if sub.Plan == nil || !sub.Plan.CoversSite(siteID) {
		return nil, ErrNoActiveSubscription
	}
	return sub, nil
}

// ExpireOverdue marca como vencidas las suscripciones activas cuya fecha de
// fin ya pasó. Pensada para correr desde el scheduler diario.
func ExpireOverdue(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Model(&m.SubscriptionModel{}).
		Where("subscription_status = ? AND subscription_end_date < ?", m.SubscriptionActive, now.Truncate(24*time.Hour)).
		Update("subscription_status", m.SubscriptionExpired)
	return res.RowsAffected, res.Error
}

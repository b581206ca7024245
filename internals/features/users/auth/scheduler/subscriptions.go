// file: internals/features/users/auth/scheduler/subscriptions.go
package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	membershipService "migym_backend/internals/features/memberships/service"
)

// StartSubscriptionExpiryScheduler marca diariamente como vencidas las
// suscripciones activas cuya fecha de fin ya pasó.
func StartSubscriptionExpiryScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Venciendo suscripciones fuera de fecha...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			expired, err := membershipService.ExpireOverdue(ctx, db, time.Now())
			cancel()
			if err != nil {
				log.Printf("[CLEANUP ERROR] No se pudieron vencer suscripciones: %v", err)
			} else if expired > 0 {
				log.Printf("[CLEANUP] %d suscripciones marcadas como vencidas", expired)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}

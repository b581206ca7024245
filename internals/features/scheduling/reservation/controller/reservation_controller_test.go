// file: internals/features/scheduling/reservation/controller/reservation_controller_test.go
package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"migym_backend/internals/features/scheduling/reservation/service"
)

func TestWriteReservationErrorStatusCodes(t *testing.T) {
	app := fiber.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"sesión llena", service.ErrSessionFull, fiber.StatusBadRequest},
		{"sesión pasada", service.ErrSessionInPast, fiber.StatusBadRequest},
		{"sin suscripción", service.ErrNoMembership, fiber.StatusBadRequest},
		{"sesión no reservable", service.ErrSessionNotReservable, fiber.StatusConflict},
		{"reserva no confirmada", service.ErrNotConfirmed, fiber.StatusConflict},
		{"sesión sin finalizar", service.ErrSessionNotCompleted, fiber.StatusConflict},
		{"no encontrada", gorm.ErrRecordNotFound, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := app.AcquireCtx(&fasthttp.RequestCtx{})
			defer app.ReleaseCtx(c)

			err := writeReservationError(c, tt.err)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c.Response().StatusCode())
		})
	}
}

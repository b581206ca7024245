// file: internals/features/scheduling/reservation/dto/reservation_dto.go
package dto

import "github.com/google/uuid"

type ReservationCreateRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	// opcional para staff; un cliente autenticado reserva para sí mismo
	ClientID *uuid.UUID `json:"client_id"`
}

type AttendanceRequest struct {
	Attended bool `json:"attended"`
}

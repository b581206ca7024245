// file: internals/features/access/dto/access_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	accessModel "migym_backend/internals/features/access/model"
	clientModel "migym_backend/internals/features/clients/model"
	membershipModel "migym_backend/internals/features/memberships/model"
)

type AccessCheckRequest struct {
	// id de cliente, email o nombre completo
	SearchTerm string    `json:"search_term" validate:"required,min=1,max=200"`
	SiteID     uuid.UUID `json:"site_id"     validate:"required"`
}

func (r *AccessCheckRequest) Normalize() {
	r.SearchTerm = strings.TrimSpace(r.SearchTerm)
}

type AccessCheckResponse struct {
	Result       accessModel.AccessResult           `json:"result"`
	Reason       *accessModel.AccessDenialReason    `json:"reason,omitempty"`
	Client       *clientModel.ClientModel           `json:"client,omitempty"`
	Subscription *membershipModel.SubscriptionModel `json:"subscription,omitempty"`
}

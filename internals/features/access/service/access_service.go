// file: internals/features/access/service/access_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	accessModel "migym_backend/internals/features/access/model"
	clientModel "migym_backend/internals/features/clients/model"
	facilityModel "migym_backend/internals/features/facilities/model"
	membershipModel "migym_backend/internals/features/memberships/model"
	membershipService "migym_backend/internals/features/memberships/service"
)

var ErrClientNotFound = errors.New("cliente no encontrado")

// SplitFullName separa un término de varias palabras en (nombre, apellido):
// la primera palabra es el nombre y el resto el apellido. Con una sola
// palabra el apellido queda vacío.
func SplitFullName(term string) (first, last string) {
	parts := strings.Fields(term)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

// FindClientBySearchTerm resuelve el término del torniquete en este orden:
// UUID de cliente, email por substring, nombre+apellido, y como último
// recurso nombre, apellido o teléfono sueltos. Todos los textos se comparan
// por substring (ILIKE con comodines).
func FindClientBySearchTerm(ctx context.Context, db *gorm.DB, term string) (*clientModel.ClientModel, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrClientNotFound
	}

	base := db.WithContext(ctx).
		Model(&clientModel.ClientModel{}).
		Joins("JOIN persons ON persons.person_id = clients.client_person_id").
		Preload("Person")

	if id, err := uuid.Parse(term); err == nil {
		var byID clientModel.ClientModel
		if er := base.Session(&gorm.Session{}).Where("client_id = ?", id).First(&byID).Error; er == nil {
			return &byID, nil
		} else if !errors.Is(er, gorm.ErrRecordNotFound) {
			return nil, er
		}
	}

	like := "%" + term + "%"

	if strings.Contains(term, "@") {
		var byEmail clientModel.ClientModel
		er := base.Session(&gorm.Session{}).
			Where("persons.person_email ILIKE ?", like).
			First(&byEmail).Error
		if er == nil {
			return &byEmail, nil
		}
		if !errors.Is(er, gorm.ErrRecordNotFound) {
			return nil, er
		}
		return nil, ErrClientNotFound
	}

	first, last := SplitFullName(term)
	if last != "" {
		var byFull clientModel.ClientModel
		er := base.Session(&gorm.Session{}).
			Where("persons.person_first_name ILIKE ? AND persons.person_last_name ILIKE ?",
				"%"+first+"%", "%"+last+"%").
			First(&byFull).Error
		if er == nil {
			return &byFull, nil
		}
		if !errors.Is(er, gorm.ErrRecordNotFound) {
			return nil, er
		}
	}

	var byAny clientModel.ClientModel
	er := base.Session(&gorm.Session{}).
		Where("persons.person_first_name ILIKE ? OR persons.person_last_name ILIKE ? OR persons.person_phone ILIKE ?",
			like, like, like).
		First(&byAny).Error
	if er == nil {
		return &byAny, nil
	}
	if errors.Is(er, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	return nil, er
}

type CheckOutcome struct {
	Result       accessModel.AccessResult
	Reason       *accessModel.AccessDenialReason
	Client       *clientModel.ClientModel
	Subscription *membershipModel.SubscriptionModel
}

// ValidateAccess decide si el cliente entra a la sede hoy y deja el intento
// en la bitácora, tanto permitido como denegado.
func ValidateAccess(ctx context.Context, db *gorm.DB, term string, siteID uuid.UUID, now time.Time) (*CheckOutcome, error) {
	outcome := &CheckOutcome{Result: accessModel.AccessDenied}

	logAttempt := func() error {
		entry := accessModel.AccessLogModel{
			AccessLogSiteID:     siteID,
			AccessLogSearchTerm: term,
			AccessLogResult:     outcome.Result,
			AccessLogReason:     outcome.Reason,
		}
		if outcome.Client != nil {
			entry.AccessLogClientID = &outcome.Client.ClientID
		}
		return db.WithContext(ctx).Create(&entry).Error
	}

	deny := func(reason accessModel.AccessDenialReason) (*CheckOutcome, error) {
		outcome.Reason = &reason
		if err := logAttempt(); err != nil {
			return nil, err
		}
		return outcome, nil
	}

	var site facilityModel.SiteModel
	if err := db.WithContext(ctx).Where("site_id = ?", siteID).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deny(accessModel.DenialSiteInactive)
		}
		return nil, err
	}
	if !site.SiteIsActive {
		return deny(accessModel.DenialSiteInactive)
	}

	client, err := FindClientBySearchTerm(ctx, db, term)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return deny(accessModel.DenialClientNotFound)
		}
		return nil, err
	}
	outcome.Client = client

	if !client.ClientIsActive {
		return deny(accessModel.DenialClientInactive)
	}

	sub, err := membershipService.HasValidSubscriptionForSite(ctx, db, client.ClientID, siteID, now)
	if err != nil {
		if errors.Is(err, membershipService.ErrNoActiveSubscription) {
			// distinguir "no tiene" de "su plan no cubre esta sede"
			if _, er2 := membershipService.FindValidSubscription(ctx, db, client.ClientID, now); er2 == nil {
				return deny(accessModel.DenialSiteNotCovered)
			} else if !errors.Is(er2, membershipService.ErrNoActiveSubscription) {
				return nil, er2
			}
			return deny(accessModel.DenialNoSubscription)
		}
		return nil, err
	}

	outcome.Result = accessModel.AccessGranted
	outcome.Subscription = sub
	if err := logAttempt(); err != nil {
		return nil, err
	}
	return outcome, nil
}

// internals/features/users/auth/service/google_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"migym_backend/internals/configs"
)

type GoogleIdentity struct {
	GoogleID string
	Email    string
	Name     string
}

// VerifyGoogleIDToken valida el id_token contra el client id configurado.
func VerifyGoogleIDToken(idToken string) (*GoogleIdentity, error) {
	if configs.GoogleClientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID no configurado")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return nil, errors.New("id_token sin email")
	}
	return &GoogleIdentity{
		GoogleID: claimSet.Sub,
		Email:    email,
		Name:     claimSet.Name,
	}, nil
}

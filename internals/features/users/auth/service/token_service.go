// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"migym_backend/internals/configs"
	authzService "migym_backend/internals/features/rbac/service"
	authModel "migym_backend/internals/features/users/auth/model"
	userModel "migym_backend/internals/features/users/user/model"
	helpers "migym_backend/internals/helpers"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 30 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func strptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// computeRefreshHash: el refresh token nunca se guarda en claro.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func buildAccessClaims(user userModel.UserModel, roles []string, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_name": user.UserName,
		"roles":     roles,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if user.UserPersonID != nil {
		claims["person_id"] = user.UserPersonID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

// IssueTokenPair firma access + refresh, persiste el hash del refresh y
// setea la cookie del refresh.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT secrets no configurados")
	}
	now := nowUTC()

	var roles []string
	if user.UserPersonID != nil {
		authz, err := authzService.Load(c.Context(), db, *user.UserPersonID)
		if err != nil {
			return "", err
		}
		roles = authz.Roles
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*user, roles, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.UserID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	if err := db.Create(&authModel.RefreshTokenModel{
		UserID:    user.UserID,
		Token:     computeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return "", err
	}

	setRefreshCookie(c, refresh, now)
	return access, nil
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token no presente")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	// el hash debe existir y estar vigente
	hash := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconocido")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	// ROTATE: revocar el token viejo antes de emitir el nuevo
	now := nowUTC()
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("id = ?", rt.ID).
		Update("revoked_at", now).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo rotar el refresh token")
	}

	access, err := IssueTokenPair(db, c, &user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el nuevo token")
	}

	return helpers.JsonOK(c, "Token renovado", fiber.Map{
		"access_token": access,
	})
}

// ========================== LOGOUT ==========================
// Mete el access token a la blacklist hasta su expiración y revoca el refresh.
func Logout(db *gorm.DB, c *fiber.Ctx, accessToken string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})

	expiredAt := nowUTC().Add(accessTTL)
	if expFloat, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expFloat), 0)
	}

	if err := db.Create(&authModel.TokenBlacklist{
		Token:     accessToken,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		return err
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		hash := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		_ = db.Model(&authModel.RefreshTokenModel{}).
			Where("token = ? AND revoked_at IS NULL", hash).
			Update("revoked_at", nowUTC()).Error
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Path:     "/api/auth",
	})
	return nil
}

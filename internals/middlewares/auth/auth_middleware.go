package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/exceptions"
	authModel "learnsmate_backend/internals/features/users/auth/model"
	helper "learnsmate_backend/internals/helpers"
	helperAuth "learnsmate_backend/internals/helpers/auth"
	"learnsmate_backend/internals/logger"
)

// AuthMiddleware verifies the bearer token on every route outside the public
// allow-list and stores the caller's code, role and name in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if constants.IsPublicRoute(c.Method(), c.Path()) {
			return c.Next()
		}

		tokenString, err := helper.ExtractBearerToken(c)
		if err != nil {
			return exceptions.WithDetail(exceptions.Unauthorized, err.Error())
		}

		revoked, err := isRevoked(db, c, tokenString)
		if err != nil {
			logger.Log.WithError(err).Error("revoked token lookup failed")
			return exceptions.New(exceptions.InternalError)
		}
		if revoked {
			return exceptions.WithDetail(exceptions.Unauthorized, "token has been revoked")
		}

		claims, err := helperAuth.ParseAccessToken(tokenString)
		if err != nil {
			logger.Log.WithError(err).Debug("token rejected")
			return exceptions.WithDetail(exceptions.Unauthorized, "invalid or expired token")
		}
		code, _ := claims.Code()

		if err := ensureActive(db, c, code, claims.Role); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.New(exceptions.UserNotFound)
			}
			return err
		}

		storeClaimsToLocals(c, tokenString, code, claims)
		return c.Next()
	}
}

func isRevoked(db *gorm.DB, c *fiber.Ctx, token string) (bool, error) {
	var n int64
	err := db.WithContext(c.UserContext()).
		Model(&authModel.RevokedTokenModel{}).
		Where("token = ?", token).
		Count(&n).Error
	return n > 0, err
}

// ensureActive rejects callers whose account was deactivated after the token was issued.
func ensureActive(db *gorm.DB, c *fiber.Ctx, code int64, role string) error {
	var row struct{ Active bool }
	q := db.WithContext(c.UserContext())

	switch {
	case role == constants.RoleAdmin:
		q = q.Table("admin").Select("admin_flag AS active").Where("admin_code = ?", code)
	case constants.IsMemberType(role):
		q = q.Table("member").Select("member_flag AS active").Where("member_code = ?", code)
	default:
		return exceptions.WithDetail(exceptions.Unauthorized, "unknown role")
	}

	if err := q.Take(&row).Error; err != nil {
		return err
	}
	if !row.Active {
		return exceptions.New(exceptions.InactiveAccount)
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, raw string, code int64, claims *helperAuth.Claims) {
	c.Locals(helper.LocRawToken, raw)
	c.Locals(helper.LocAuthCode, code)
	c.Locals(helper.LocRole, claims.Role)
	c.Locals(helper.LocName, claims.Name)
}

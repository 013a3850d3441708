package admins

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/admins/dto"
	"learnsmate_backend/internals/features/users/admins/service"
	"learnsmate_backend/internals/logger"
)

// SeedAdminsFromJSON creates the listed admins, skipping emails that exist.
func SeedAdminsFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, errors.Wrap(err, "read admin seed")
	}
	var inputs []dto.AdminSignupRequest
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, errors.Wrap(err, "decode admin seed")
	}

	svc := service.NewAdminService(db)
	created := 0
	for _, in := range inputs {
		in.Normalize()
		if _, err := svc.Signup(ctx, in); err != nil {
			if exceptions.Is(err, exceptions.DuplicateEmail) {
				logger.Log.WithField("email", in.AdminEmail).Debug("admin seed exists, skipped")
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

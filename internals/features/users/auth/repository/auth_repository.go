package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "learnsmate_backend/internals/databases"
	authModel "learnsmate_backend/internals/features/users/auth/model"
)

type RevokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

// Revoke stores token until expiredAt. Revoking twice is a no-op.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, token string, expiredAt time.Time) error {
	return database.Conn(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.RevokedTokenModel{Token: token, ExpiredAt: expiredAt}).Error
}

func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&authModel.RevokedTokenModel{}).
		Where("token = ?", token).Count(&n).Error
	return n > 0, err
}

// DeleteExpired hard-deletes tokens that can no longer be presented.
func (r *RevokedTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := database.Conn(ctx, r.db).Unscoped().
		Where("expired_at <= ?", now).
		Delete(&authModel.RevokedTokenModel{})
	return res.RowsAffected, res.Error
}

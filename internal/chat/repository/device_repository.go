package repository

import (
	"context"

	"gorm.io/gorm"

	"movieplus/internal/dbmysql"
)

type DeviceRepository interface {
	DeleteByToken(ctx context.Context, token string) error
	Create(ctx context.Context, device *dbmysql.DeviceToken) error
	TokensFor(ctx context.Context, userID string) ([]string, error)
	TokensForMany(ctx context.Context, userIDs []string) ([]string, error)
	DeleteTokens(ctx context.Context, tokens []string) error
}

type deviceRepo struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepo{db: db}
}

func (r *deviceRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Delete(&dbmysql.DeviceToken{}, "token = ?", token).Error
}

func (r *deviceRepo) Create(ctx context.Context, device *dbmysql.DeviceToken) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *deviceRepo) TokensFor(ctx context.Context, userID string) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.DeviceToken{}).
		Where("user_id = ?", userID).
		Pluck("token", &tokens).Error
	return tokens, err
}

func (r *deviceRepo) TokensForMany(ctx context.Context, userIDs []string) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.DeviceToken{}).
		Where("user_id IN ?", userIDs).
		Pluck("token", &tokens).Error
	return tokens, err
}

// DeleteTokens prunes tokens the provider reported as dead.
func (r *deviceRepo) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Delete(&dbmysql.DeviceToken{}, "token IN ?", tokens).Error
}

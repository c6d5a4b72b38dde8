package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"movieplus/internal/dbmysql"
)

type PresenceRepository interface {
	DeleteByHandle(ctx context.Context, connectionID string) error
	Create(ctx context.Context, conn *dbmysql.UserConnection) error
	ConnectionsFor(ctx context.Context, userID string) ([]string, error)
	HasConnections(ctx context.Context, userID string) (bool, error)
	OnlineUserIDs(ctx context.Context, userIDs []string) ([]string, error)
	TouchLastSeen(ctx context.Context, userID string, at time.Time) error
}

type presenceRepo struct {
	db *gorm.DB
}

func NewPresenceRepository(db *gorm.DB) PresenceRepository {
	return &presenceRepo{db: db}
}

func (r *presenceRepo) DeleteByHandle(ctx context.Context, connectionID string) error {
	return r.db.WithContext(ctx).
		Delete(&dbmysql.UserConnection{}, "connection_id = ?", connectionID).Error
}

func (r *presenceRepo) Create(ctx context.Context, conn *dbmysql.UserConnection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

func (r *presenceRepo) ConnectionsFor(ctx context.Context, userID string) ([]string, error) {
	var handles []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.UserConnection{}).
		Where("user_id = ?", userID).
		Pluck("connection_id", &handles).Error
	return handles, err
}

func (r *presenceRepo) HasConnections(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.UserConnection{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// OnlineUserIDs returns the distinct subset of userIDs holding at least
// one live connection. One query regardless of input size.
func (r *presenceRepo) OnlineUserIDs(ctx context.Context, userIDs []string) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var online []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.UserConnection{}).
		Where("user_id IN ?", userIDs).
		Distinct().
		Pluck("user_id", &online).Error
	return online, err
}

func (r *presenceRepo) TouchLastSeen(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.UserConnection{}).
		Where("user_id = ?", userID).
		Update("last_seen_at", at).Error
}

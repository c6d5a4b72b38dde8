package repository

import (
	"context"

	"gorm.io/gorm"

	"movieplus/internal/dbmysql"
)

// UserRepository is a read-only view of the accounts table, used to
// hydrate display names on conversation and message DTOs.
type UserRepository interface {
	ByID(ctx context.Context, id string) (*dbmysql.User, error)
	ByIDs(ctx context.Context, ids []string) (map[string]*dbmysql.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) ByID(ctx context.Context, id string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ByIDs(ctx context.Context, ids []string) (map[string]*dbmysql.User, error) {
	users := make(map[string]*dbmysql.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	var rows []*dbmysql.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}

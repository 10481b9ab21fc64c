package repository

import (
	"context"
	"strings"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"

	"github.com/sokoni/service-channel-access/service/models"
)

type adminUserRepository struct {
	datastore.BaseRepository[*models.AdminUser]
}

func NewAdminUserRepository(ctx context.Context, dbPool pool.Pool, workMan workerpool.Manager) AdminUserRepository {
	repo := adminUserRepository{
		BaseRepository: datastore.NewBaseRepository[*models.AdminUser](
			ctx, dbPool, workMan, func() *models.AdminUser { return &models.AdminUser{} },
		),
	}
	return &repo
}

func (ur *adminUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.AdminUser, error) {
	user := &models.AdminUser{}

	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if err := ur.Pool().DB(ctx, true).First(user, " identifier = ?", identifier).Error; err != nil {
		return nil, err
	}

	return user, nil
}

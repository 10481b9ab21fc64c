package repository

import (
	"context"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"

	"github.com/sokoni/service-channel-access/service/models"
)

type roleRepository struct {
	datastore.BaseRepository[*models.Role]
}

func NewRoleRepository(ctx context.Context, dbPool pool.Pool, workMan workerpool.Manager) RoleRepository {
	repo := roleRepository{
		BaseRepository: datastore.NewBaseRepository[*models.Role](
			ctx, dbPool, workMan, func() *models.Role { return &models.Role{} },
		),
	}
	return &repo
}

func (rr *roleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	role := &models.Role{}
	err := rr.Pool().DB(ctx, true).First(role, " name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return role, nil
}

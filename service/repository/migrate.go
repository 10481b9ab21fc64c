package repository

import (
	"context"

	"github.com/pitabwire/frame/datastore"

	"github.com/sokoni/service-channel-access/service/models"
)

func Migrate(ctx context.Context, dbManager datastore.Manager, migrationPath string) error {
	dbPool := dbManager.GetPool(ctx, datastore.DefaultMigrationPoolName)

	return dbManager.Migrate(ctx, dbPool, migrationPath,
		&models.AdminUser{}, &models.Channel{}, &models.Role{}, &models.ChannelRole{},
	)
}

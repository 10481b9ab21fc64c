package repository

import (
	"context"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"
	"gorm.io/gorm/clause"

	"github.com/sokoni/service-channel-access/service/models"
)

type channelRoleRepository struct {
	datastore.BaseRepository[*models.ChannelRole]
}

func NewChannelRoleRepository(
	ctx context.Context,
	dbPool pool.Pool,
	workMan workerpool.Manager,
) ChannelRoleRepository {
	repo := channelRoleRepository{
		BaseRepository: datastore.NewBaseRepository[*models.ChannelRole](
			ctx, dbPool, workMan, func() *models.ChannelRole { return &models.ChannelRole{} },
		),
	}
	return &repo
}

func (crr *channelRoleRepository) GetByUserID(ctx context.Context, userID string) ([]*models.ChannelRole, error) {
	channelRoleList := make([]*models.ChannelRole, 0)
	err := crr.Pool().DB(ctx, true).
		Preload(clause.Associations).
		Where("user_id = ?", userID).
		Find(&channelRoleList).
		Error
	return channelRoleList, err
}

func (crr *channelRoleRepository) List(
	ctx context.Context,
	userID string,
	lastChannelRoleID string,
	count int,
) ([]*models.ChannelRole, error) {
	var channelRoleList []*models.ChannelRole

	database := crr.Pool().DB(ctx, true).Preload(clause.Associations).Order("id")

	if count > 0 {
		database = database.Limit(count)
	}

	if userID != "" {
		database = database.Where("user_id = ?", userID)
	}

	if lastChannelRoleID != "" {
		database = database.Where("id > ?", lastChannelRoleID)
	}

	err := database.Find(&channelRoleList).Error
	return channelRoleList, err
}

// DeleteAssociation removes one assignment. A missing id surfaces as an
// error; a removal the datastore refuses comes back as a not-deleted result
// so batch callers can halt without losing the underlying cause.
func (crr *channelRoleRepository) DeleteAssociation(ctx context.Context, id string) (*DeletionResult, error) {
	channelRole, err := crr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = crr.Pool().DB(ctx, false).Delete(channelRole).Error
	if err != nil {
		return &DeletionResult{Deleted: false, Message: err.Error()}, nil
	}

	return &DeletionResult{Deleted: true}, nil
}

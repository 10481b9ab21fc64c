package repository

import (
	"context"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"

	"github.com/sokoni/service-channel-access/service/models"
)

type channelRepository struct {
	datastore.BaseRepository[*models.Channel]
}

func NewChannelRepository(ctx context.Context, dbPool pool.Pool, workMan workerpool.Manager) ChannelRepository {
	repo := channelRepository{
		BaseRepository: datastore.NewBaseRepository[*models.Channel](
			ctx, dbPool, workMan, func() *models.Channel { return &models.Channel{} },
		),
	}
	return &repo
}

func (cr *channelRepository) GetByToken(ctx context.Context, token string) (*models.Channel, error) {
	channel := &models.Channel{}
	err := cr.Pool().DB(ctx, true).First(channel, " token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return channel, nil
}

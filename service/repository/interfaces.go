package repository

import (
	"context"

	"github.com/pitabwire/frame/datastore"

	"github.com/sokoni/service-channel-access/service/models"
)

type AdminUserRepository interface {
	datastore.BaseRepository[*models.AdminUser]
	GetByIdentifier(ctx context.Context, identifier string) (*models.AdminUser, error)
}

type ChannelRepository interface {
	datastore.BaseRepository[*models.Channel]
	GetByToken(ctx context.Context, token string) (*models.Channel, error)
}

type RoleRepository interface {
	datastore.BaseRepository[*models.Role]
	GetByName(ctx context.Context, name string) (*models.Role, error)
}

// DeletionResult is the typed outcome of an association removal. A removal
// that fails at the persistence layer is reported here rather than raised,
// so a caller running a batch can stop without unwinding.
type DeletionResult struct {
	Deleted bool
	Message string
}

type ChannelRoleRepository interface {
	datastore.BaseRepository[*models.ChannelRole]
	GetByUserID(ctx context.Context, userID string) ([]*models.ChannelRole, error)
	List(ctx context.Context, userID string, lastChannelRoleID string, count int) ([]*models.ChannelRole, error)
	DeleteAssociation(ctx context.Context, id string) (*DeletionResult, error)
}

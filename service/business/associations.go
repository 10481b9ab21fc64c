package business

import (
	"context"
	"strings"

	"github.com/pitabwire/frame/data"
	"golang.org/x/sync/errgroup"

	"github.com/sokoni/service-channel-access/service"
	"github.com/sokoni/service-channel-access/service/models"
	"github.com/sokoni/service-channel-access/service/repository"
)

//go:generate mockgen -destination=mocks/business_mock.go -package=mocks github.com/sokoni/service-channel-access/service/business AssociationBusiness,AccessBusiness

// AssociationBusiness is the store for channel role assignments. Every write
// verifies the referenced user, channel and role resolve before anything is
// persisted.
type AssociationBusiness interface {
	GetByID(ctx context.Context, associationID string) (*models.ChannelRole, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.ChannelRole, error)
	List(ctx context.Context, userID, lastChannelRoleID string, count int) ([]*models.ChannelRole, error)
	Create(ctx context.Context, userID, channelID, roleID string) (*models.ChannelRole, error)
	Update(ctx context.Context, associationID, userID, channelID, roleID string) (*models.ChannelRole, error)
	Delete(ctx context.Context, associationID string) (*repository.DeletionResult, error)
}

func NewAssociationBusiness(
	_ context.Context,
	userRepo repository.AdminUserRepository,
	channelRepo repository.ChannelRepository,
	roleRepo repository.RoleRepository,
	channelRoleRepo repository.ChannelRoleRepository,
) AssociationBusiness {
	return &associationBusiness{
		userRepo:        userRepo,
		channelRepo:     channelRepo,
		roleRepo:        roleRepo,
		channelRoleRepo: channelRoleRepo,
	}
}

type associationBusiness struct {
	userRepo        repository.AdminUserRepository
	channelRepo     repository.ChannelRepository
	roleRepo        repository.RoleRepository
	channelRoleRepo repository.ChannelRoleRepository
}

// refError maps a missing reference row onto the matching not found error.
func refError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if data.ErrorIsNoRows(err) {
		return notFound
	}
	return err
}

func (ab *associationBusiness) GetByID(ctx context.Context, associationID string) (*models.ChannelRole, error) {
	channelRole, err := ab.channelRoleRepo.GetByID(ctx, associationID)
	if err != nil {
		return nil, refError(err, service.ErrAssociationDoesNotExist)
	}
	return channelRole, nil
}

func (ab *associationBusiness) GetByUserID(ctx context.Context, userID string) ([]*models.ChannelRole, error) {
	return ab.channelRoleRepo.GetByUserID(ctx, userID)
}

func (ab *associationBusiness) List(
	ctx context.Context,
	userID, lastChannelRoleID string,
	count int,
) ([]*models.ChannelRole, error) {
	return ab.channelRoleRepo.List(ctx, userID, lastChannelRoleID, count)
}

func (ab *associationBusiness) Create(
	ctx context.Context,
	userID, channelID, roleID string,
) (*models.ChannelRole, error) {
	userID = strings.TrimSpace(userID)
	channelID = strings.TrimSpace(channelID)
	roleID = strings.TrimSpace(roleID)
	if userID == "" || channelID == "" || roleID == "" {
		return nil, service.ErrUnspecifiedID
	}

	var (
		user    *models.AdminUser
		channel *models.Channel
		role    *models.Role
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = ab.userRepo.GetByID(gctx, userID)
		return refError(err, service.ErrUserDoesNotExist)
	})
	g.Go(func() error {
		var err error
		channel, err = ab.channelRepo.GetByID(gctx, channelID)
		return refError(err, service.ErrChannelDoesNotExist)
	})
	g.Go(func() error {
		var err error
		role, err = ab.roleRepo.GetByID(gctx, roleID)
		return refError(err, service.ErrRoleDoesNotExist)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	channelRole := &models.ChannelRole{
		UserID:    user.GetID(),
		User:      *user,
		ChannelID: channel.GetID(),
		Channel:   *channel,
		RoleID:    role.GetID(),
		Role:      *role,
	}

	err := ab.channelRoleRepo.Create(ctx, channelRole)
	if err != nil {
		return nil, err
	}

	return channelRole, nil
}

func (ab *associationBusiness) Update(
	ctx context.Context,
	associationID, userID, channelID, roleID string,
) (*models.ChannelRole, error) {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return nil, service.ErrUnspecifiedID
	}

	var (
		channelRole *models.ChannelRole
		user        *models.AdminUser
		channel     *models.Channel
		role        *models.Role
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		channelRole, err = ab.channelRoleRepo.GetByID(gctx, associationID)
		return refError(err, service.ErrAssociationDoesNotExist)
	})
	g.Go(func() error {
		var err error
		user, err = ab.userRepo.GetByID(gctx, strings.TrimSpace(userID))
		return refError(err, service.ErrUserDoesNotExist)
	})
	g.Go(func() error {
		var err error
		channel, err = ab.channelRepo.GetByID(gctx, strings.TrimSpace(channelID))
		return refError(err, service.ErrChannelDoesNotExist)
	})
	g.Go(func() error {
		var err error
		role, err = ab.roleRepo.GetByID(gctx, strings.TrimSpace(roleID))
		return refError(err, service.ErrRoleDoesNotExist)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Full replacement of all three references, never a partial repoint.
	channelRole.UserID = user.GetID()
	channelRole.User = *user
	channelRole.ChannelID = channel.GetID()
	channelRole.Channel = *channel
	channelRole.RoleID = role.GetID()
	channelRole.Role = *role

	_, err := ab.channelRoleRepo.Update(ctx, channelRole)
	if err != nil {
		return nil, err
	}

	return channelRole, nil
}

func (ab *associationBusiness) Delete(
	ctx context.Context,
	associationID string,
) (*repository.DeletionResult, error) {
	result, err := ab.channelRoleRepo.DeleteAssociation(ctx, associationID)
	if err != nil {
		return nil, refError(err, service.ErrAssociationDoesNotExist)
	}
	return result, nil
}

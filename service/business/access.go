package business

import (
	"context"
	"strings"

	frevents "github.com/pitabwire/frame/events"
	"github.com/pitabwire/util"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sokoni/service-channel-access/config"
	"github.com/sokoni/service-channel-access/service"
	"github.com/sokoni/service-channel-access/service/events"
	"github.com/sokoni/service-channel-access/service/models"
)

// ChannelPermission is one entry of a user's permission view: the metadata
// of a channel the user holds a role in, paired with that role's permission
// set. A user with several roles in one channel gets several entries.
type ChannelPermission struct {
	ChannelID    string   `json:"channelId"`
	ChannelToken string   `json:"channelToken"`
	ChannelCode  string   `json:"channelCode"`
	Permissions  []string `json:"permissions"`
}

// AccessBusiness reconciles a user's persisted channel role assignments
// against a caller supplied desired set, and derives the per channel
// permission view.
type AccessBusiness interface {
	SaveChannelRoles(ctx context.Context, userID models.ID, desired []models.ChannelRolePair) error
	PermissionsForUser(ctx context.Context, userID models.ID) ([]*ChannelPermission, error)
}

func NewAccessBusiness(
	_ context.Context,
	cfg *config.ChannelAccessConfig,
	eventsMan frevents.Manager,
	associationBiz AssociationBusiness,
) AccessBusiness {
	return &accessBusiness{
		cfg:            cfg,
		eventsMan:      eventsMan,
		associationBiz: associationBiz,
	}
}

type accessBusiness struct {
	cfg            *config.ChannelAccessConfig
	eventsMan      frevents.Manager
	associationBiz AssociationBusiness
}

// ComputeDiff partitions a desired pair set against the currently persisted
// assignments. Desired pairs already present are left alone, missing ones
// come back as additions, and persisted assignments absent from the desired
// set come back as removals in the current list's order. Duplicate desired
// pairs collapse to one.
func ComputeDiff(
	current []*models.ChannelRole,
	desired []models.ChannelRolePair,
) (toAdd []models.ChannelRolePair, toRemove []*models.ChannelRole) {
	currentKeys := make(map[string]bool, len(current))
	for _, assignment := range current {
		currentKeys[assignment.PairKey()] = true
	}

	desiredKeys := make(map[string]bool, len(desired))
	for _, pair := range desired {
		key := pair.Key()
		if desiredKeys[key] {
			continue
		}
		desiredKeys[key] = true

		if !currentKeys[key] {
			toAdd = append(toAdd, pair)
		}
	}

	for _, assignment := range current {
		if !desiredKeys[assignment.PairKey()] {
			toRemove = append(toRemove, assignment)
		}
	}

	return toAdd, toRemove
}

// SaveChannelRoles makes the persisted (channel, role) set of the user equal
// the desired set. Additions run as one concurrent batch; a failed addition
// fails the join but additions already committed stay committed. Removals
// run sequentially and stop at the first removal the store refuses. The
// operation is therefore not atomic, but it is idempotent: a retried save
// recomputes the diff against whatever state the previous attempt left.
func (ab *accessBusiness) SaveChannelRoles(
	ctx context.Context,
	userID models.ID,
	desired []models.ChannelRolePair,
) error {
	uid := strings.TrimSpace(userID.String())
	if uid == "" {
		return service.ErrUnspecifiedID
	}

	if ab.cfg != nil && ab.cfg.MaxChannelRolesPerUser > 0 && len(desired) > ab.cfg.MaxChannelRolesPerUser {
		return status.Errorf(codes.InvalidArgument,
			"a user can hold at most %d channel role assignments", ab.cfg.MaxChannelRolesPerUser)
	}

	current, err := ab.associationBiz.GetByUserID(ctx, uid)
	if err != nil {
		return err
	}

	toAdd, toRemove := ComputeDiff(current, desired)

	logger := util.Log(ctx).
		WithField("user_id", uid).
		WithField("additions", len(toAdd)).
		WithField("removals", len(toRemove))
	logger.Debug("reconciling channel role assignments")

	g, gctx := errgroup.WithContext(ctx)
	for _, pair := range toAdd {
		g.Go(func() error {
			_, cErr := ab.associationBiz.Create(gctx, uid,
				strings.TrimSpace(pair.ChannelID.String()),
				strings.TrimSpace(pair.RoleID.String()))
			return cErr
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	for _, assignment := range toRemove {
		result, dErr := ab.associationBiz.Delete(ctx, assignment.GetID())
		if dErr != nil {
			return dErr
		}

		if !result.Deleted {
			return status.Errorf(codes.Internal,
				"could not remove channel role assignment %s: %s", assignment.GetID(), result.Message)
		}
	}

	if len(toAdd) > 0 || len(toRemove) > 0 {
		err = ab.eventsMan.Emit(ctx, events.AccessChangedEventHandlerName, uid)
		if err != nil {
			logger.WithError(err).Error("could not emit access changed event")
		}
	}

	return nil
}

// PermissionsForUser builds the permission view fresh from the store on
// every call.
func (ab *accessBusiness) PermissionsForUser(
	ctx context.Context,
	userID models.ID,
) ([]*ChannelPermission, error) {
	uid := strings.TrimSpace(userID.String())
	if uid == "" {
		return nil, service.ErrUnspecifiedID
	}

	current, err := ab.associationBiz.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	view := make([]*ChannelPermission, 0, len(current))
	for _, assignment := range current {
		permissions := make([]string, 0, len(assignment.Role.Permissions))
		permissions = append(permissions, assignment.Role.Permissions...)

		view = append(view, &ChannelPermission{
			ChannelID:    assignment.ChannelID,
			ChannelToken: assignment.Channel.Token,
			ChannelCode:  assignment.Channel.Code,
			Permissions:  permissions,
		})
	}

	return view, nil
}

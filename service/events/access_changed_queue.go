package events

import (
	"context"
	"errors"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/data"
	"github.com/pitabwire/util"

	"github.com/sokoni/service-channel-access/config"
	"github.com/sokoni/service-channel-access/service/repository"
)

const AccessChangedEventHandlerName = "access.changed.queue"

// AccessChangedQueue reacts to a reconciled channel role set by queueing the
// affected user's assignment summary for peripheral services.
type AccessChangedQueue struct {
	Service *frame.Service

	channelRoleRepo repository.ChannelRoleRepository
}

func NewAccessChangedQueue(
	_ context.Context,
	svc *frame.Service,
	channelRoleRepo repository.ChannelRoleRepository,
) *AccessChangedQueue {
	return &AccessChangedQueue{
		Service:         svc,
		channelRoleRepo: channelRoleRepo,
	}
}

func (acq *AccessChangedQueue) Name() string {
	return AccessChangedEventHandlerName
}

func (acq *AccessChangedQueue) PayloadType() any {
	pType := ""
	return &pType
}

func (acq *AccessChangedQueue) Validate(_ context.Context, payload any) error {
	_, ok := payload.(*string)
	if !ok {
		return errors.New("invalid payload type, expected *string")
	}

	return nil
}

func (acq *AccessChangedQueue) Execute(ctx context.Context, payload any) error {
	userIDPtr, ok := payload.(*string)
	if !ok {
		return errors.New("invalid payload type, expected *string")
	}
	userID := *userIDPtr

	accessConfig, ok := acq.Service.Config().(*config.ChannelAccessConfig)
	if !ok {
		return errors.New("configuration is not of type ChannelAccessConfig")
	}

	logger := util.Log(ctx).WithField("payload", userID).WithField("type", acq.Name())
	logger.Debug("handling access change")

	assignments, err := acq.channelRoleRepo.GetByUserID(ctx, userID)
	if err != nil {
		if data.ErrorIsNoRows(err) {
			logger.WithError(err).Error("no such user assignment exists")
			return nil
		}
		logger.WithError(err).Error("could not load channel role assignments")
		return err
	}

	assignmentList := make([]map[string]string, 0, len(assignments))
	for _, assignment := range assignments {
		assignmentList = append(assignmentList, map[string]string{
			"channel_id": assignment.ChannelID,
			"role_id":    assignment.RoleID,
		})
	}

	summary := map[string]any{
		"user_id":     userID,
		"assignments": assignmentList,
	}

	// Queue the new assignment set for further processing by peripheral services
	err = acq.Service.QueueManager().Publish(ctx, accessConfig.QueueAccessChangedName, summary)
	if err != nil {
		logger.WithError(err).Error("could not publish access change")
		return err
	}

	logger.WithField("assignment_count", len(assignmentList)).
		Debug("successfully queued access change")

	return nil
}

package business_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sokoni/service-channel-access/service"
	"github.com/sokoni/service-channel-access/service/business"
	"github.com/sokoni/service-channel-access/service/business/mocks"
	"github.com/sokoni/service-channel-access/service/models"
	"github.com/sokoni/service-channel-access/service/repository"
)

func mockedAccessBusiness(t *testing.T) (business.AccessBusiness, *mocks.MockAssociationBusiness) {
	ctrl := gomock.NewController(t)
	associationBiz := mocks.NewMockAssociationBusiness(ctrl)

	return business.NewAccessBusiness(t.Context(), nil, nil, associationBiz), associationBiz
}

func TestSaveChannelRoles_RefusedRemovalAbortsBatch(t *testing.T) {
	accessBiz, associationBiz := mockedAccessBusiness(t)

	current := []*models.ChannelRole{
		persistedAssignment("a1", "c1", "r1"),
		persistedAssignment("a2", "c2", "r2"),
		persistedAssignment("a3", "c3", "r3"),
	}

	// The second removal is refused by the store. The loop must surface it
	// and never reach the third assignment.
	gomock.InOrder(
		associationBiz.EXPECT().GetByUserID(gomock.Any(), "user1").Return(current, nil),
		associationBiz.EXPECT().Delete(gomock.Any(), "a1").
			Return(&repository.DeletionResult{Deleted: true}, nil),
		associationBiz.EXPECT().Delete(gomock.Any(), "a2").
			Return(&repository.DeletionResult{Deleted: false, Message: "row is locked"}, nil),
	)

	err := accessBiz.SaveChannelRoles(t.Context(), "user1", nil)
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "a2")
	require.Contains(t, status.Convert(err).Message(), "row is locked")
}

func TestSaveChannelRoles_RemovalErrorAbortsBatch(t *testing.T) {
	accessBiz, associationBiz := mockedAccessBusiness(t)

	current := []*models.ChannelRole{
		persistedAssignment("a1", "c1", "r1"),
		persistedAssignment("a2", "c2", "r2"),
	}

	gomock.InOrder(
		associationBiz.EXPECT().GetByUserID(gomock.Any(), "user1").Return(current, nil),
		associationBiz.EXPECT().Delete(gomock.Any(), "a1").
			Return(nil, service.ErrAssociationDoesNotExist),
	)

	err := accessBiz.SaveChannelRoles(t.Context(), "user1", nil)
	require.ErrorIs(t, err, service.ErrAssociationDoesNotExist)
}

func TestSaveChannelRoles_FailedCreationFailsJoin(t *testing.T) {
	accessBiz, associationBiz := mockedAccessBusiness(t)

	associationBiz.EXPECT().GetByUserID(gomock.Any(), "user1").Return(nil, nil)

	// Both creations are dispatched; the surviving one stays committed and
	// the join reports the failure.
	associationBiz.EXPECT().Create(gomock.Any(), "user1", "c1", "r1").
		Return(persistedAssignment("a1", "c1", "r1"), nil)
	associationBiz.EXPECT().Create(gomock.Any(), "user1", "c2", "r2").
		Return(nil, service.ErrChannelDoesNotExist)

	desired := []models.ChannelRolePair{
		{ChannelID: "c1", RoleID: "r1"},
		{ChannelID: "c2", RoleID: "r2"},
	}

	err := accessBiz.SaveChannelRoles(t.Context(), "user1", desired)
	require.ErrorIs(t, err, service.ErrChannelDoesNotExist)
}

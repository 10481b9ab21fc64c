package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sokoni/service-channel-access/service/business/mocks"
)

func TestListChannelRolesUsesConfiguredDefaultCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	associationBiz := mocks.NewMockAssociationBusiness(ctrl)

	server := &AccessServer{
		AssociationBusiness: associationBiz,
		listDefaultCount:    7,
	}

	associationBiz.EXPECT().List(gomock.Any(), "user1", "", 7).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/user1/channel-roles", nil)
	rr := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// An explicit count wins over the configured default.
	associationBiz.EXPECT().List(gomock.Any(), "user1", "", 3).Return(nil, nil)

	req = httptest.NewRequest(http.MethodGet, "/v1/users/user1/channel-roles?count=3", nil)
	rr = httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestListChannelRolesFallsBackWithoutConfiguredDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	associationBiz := mocks.NewMockAssociationBusiness(ctrl)

	server := &AccessServer{AssociationBusiness: associationBiz}

	associationBiz.EXPECT().List(gomock.Any(), "user1", "", defaultListCount).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/user1/channel-roles", nil)
	rr := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sokoni/service-channel-access/service"
	"github.com/sokoni/service-channel-access/service/business"
	"github.com/sokoni/service-channel-access/service/business/mocks"
	"github.com/sokoni/service-channel-access/service/handlers"
	"github.com/sokoni/service-channel-access/service/models"
	"github.com/sokoni/service-channel-access/service/repository"
)

func newTestServer(t *testing.T) (*handlers.AccessServer, *mocks.MockAssociationBusiness, *mocks.MockAccessBusiness) {
	ctrl := gomock.NewController(t)

	associationBiz := mocks.NewMockAssociationBusiness(ctrl)
	accessBiz := mocks.NewMockAccessBusiness(ctrl)

	server := &handlers.AccessServer{
		AssociationBusiness: associationBiz,
		AccessBusiness:      accessBiz,
	}

	return server, associationBiz, accessBiz
}

func doRequest(server *handlers.AccessServer, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rr, req)
	return rr
}

func TestSaveChannelRolesEndpoint(t *testing.T) {
	server, _, accessBiz := newTestServer(t)

	expected := []models.ChannelRolePair{
		{ChannelID: "7", RoleID: "42"},
		{ChannelID: "uk-web", RoleID: "editor"},
	}
	accessBiz.EXPECT().
		SaveChannelRoles(gomock.Any(), models.ID("user1"), expected).
		Return(nil).
		Times(2)

	// Numeric and string id forms in the payload land as the same pairs.
	body := map[string]any{
		"pairs": []map[string]any{
			{"channelId": 7, "roleId": "42"},
			{"channelId": "uk-web", "roleId": "editor"},
		},
	}

	rr := doRequest(server, http.MethodPost, "/v1/users/user1/channel-roles", body)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(server, http.MethodPut, "/v1/users/user1/channel-roles", body)
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSaveChannelRolesEndpoint_Errors(t *testing.T) {
	server, _, accessBiz := newTestServer(t)

	rr := doRequest(server, http.MethodPost, "/v1/users/user1/channel-roles", "not an object")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	accessBiz.EXPECT().
		SaveChannelRoles(gomock.Any(), models.ID("user1"), gomock.Any()).
		Return(service.ErrRoleDoesNotExist)

	rr = doRequest(server, http.MethodPost, "/v1/users/user1/channel-roles",
		map[string]any{"pairs": []map[string]any{{"channelId": "c", "roleId": "r"}}})
	require.Equal(t, http.StatusNotFound, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Contains(t, response["error"], "role")
}

func TestListChannelRolesEndpoint(t *testing.T) {
	server, associationBiz, _ := newTestServer(t)

	first := &models.ChannelRole{UserID: "user1", ChannelID: "c1", RoleID: "r1"}
	first.ID = "cr1"
	second := &models.ChannelRole{UserID: "user1", ChannelID: "c2", RoleID: "r2"}
	second.ID = "cr2"

	associationBiz.EXPECT().
		List(gomock.Any(), "user1", "", 50).
		Return([]*models.ChannelRole{first, second}, nil)

	rr := doRequest(server, http.MethodGet, "/v1/users/user1/channel-roles", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Data []handlers.ChannelRoleObject `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Data, 2)
	require.Equal(t, "cr1", response.Data[0].ID)
	require.Equal(t, "c1", response.Data[0].ChannelID)

	associationBiz.EXPECT().
		List(gomock.Any(), "user1", "cr1", 1).
		Return([]*models.ChannelRole{second}, nil)

	rr = doRequest(server, http.MethodGet, "/v1/users/user1/channel-roles?count=1&lastChannelRoleId=cr1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestGetPermissionsEndpoint(t *testing.T) {
	server, _, accessBiz := newTestServer(t)

	view := []*business.ChannelPermission{
		{
			ChannelID:    "c1",
			ChannelToken: "uk-web",
			ChannelCode:  "UK",
			Permissions:  []string{"ReadOrder", "UpdateOrder"},
		},
	}
	accessBiz.EXPECT().
		PermissionsForUser(gomock.Any(), models.ID("user1")).
		Return(view, nil)

	rr := doRequest(server, http.MethodGet, "/v1/users/user1/permissions", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Data []business.ChannelPermission `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	require.Equal(t, "uk-web", response.Data[0].ChannelToken)
	require.Equal(t, []string{"ReadOrder", "UpdateOrder"}, response.Data[0].Permissions)
}

func TestUpdateAssociationEndpoint(t *testing.T) {
	server, associationBiz, _ := newTestServer(t)

	updated := &models.ChannelRole{UserID: "u1", ChannelID: "c2", RoleID: "r2"}
	updated.ID = "cr1"

	associationBiz.EXPECT().
		Update(gomock.Any(), "cr1", "u1", "c2", "r2").
		Return(updated, nil)

	rr := doRequest(server, http.MethodPut, "/v1/channel-roles/cr1",
		map[string]any{"userId": "u1", "channelId": "c2", "roleId": "r2"})
	require.Equal(t, http.StatusOK, rr.Code)

	var response handlers.ChannelRoleObject
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, "cr1", response.ID)
	require.Equal(t, "c2", response.ChannelID)

	associationBiz.EXPECT().
		Update(gomock.Any(), "missing", "u1", "c2", "r2").
		Return(nil, service.ErrAssociationDoesNotExist)

	rr = doRequest(server, http.MethodPut, "/v1/channel-roles/missing",
		map[string]any{"userId": "u1", "channelId": "c2", "roleId": "r2"})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteAssociationEndpoint(t *testing.T) {
	server, associationBiz, _ := newTestServer(t)

	associationBiz.EXPECT().
		Delete(gomock.Any(), "cr1").
		Return(&repository.DeletionResult{Deleted: true}, nil)

	rr := doRequest(server, http.MethodDelete, "/v1/channel-roles/cr1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, true, response["deleted"])
}

func TestDeleteAssociationEndpoint_RefusedRemoval(t *testing.T) {
	server, associationBiz, _ := newTestServer(t)

	associationBiz.EXPECT().
		Delete(gomock.Any(), "cr1").
		Return(&repository.DeletionResult{Deleted: false, Message: "assignment is referenced"}, nil)

	rr := doRequest(server, http.MethodDelete, "/v1/channel-roles/cr1", nil)
	require.Equal(t, http.StatusConflict, rr.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, false, response["deleted"])
	require.Equal(t, "assignment is referenced", response["message"])
}

func TestDeleteAssociationEndpoint_Errors(t *testing.T) {
	server, associationBiz, _ := newTestServer(t)

	associationBiz.EXPECT().
		Delete(gomock.Any(), "missing").
		Return(nil, service.ErrAssociationDoesNotExist)

	rr := doRequest(server, http.MethodDelete, "/v1/channel-roles/missing", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	associationBiz.EXPECT().
		Delete(gomock.Any(), "cr1").
		Return(nil, errors.New("connection reset"))

	rr = doRequest(server, http.MethodDelete, "/v1/channel-roles/cr1", nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHealthCheckEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t)

	rr := doRequest(server, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

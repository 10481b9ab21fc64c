package handlers

import (
	"net/http"
	"strconv"

	"github.com/sokoni/service-channel-access/service/models"
)

const defaultListCount = 50

// SaveChannelRolesRequest is the desired assignment set for one user.
type SaveChannelRolesRequest struct {
	Pairs []models.ChannelRolePair `json:"pairs"`
}

// UpdateAssociationRequest repoints every reference of one assignment.
type UpdateAssociationRequest struct {
	UserID    models.ID `json:"userId"`
	ChannelID models.ID `json:"channelId"`
	RoleID    models.ID `json:"roleId"`
}

// ChannelRoleObject is the API shape of one persisted assignment.
type ChannelRoleObject struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ChannelID string `json:"channelId"`
	RoleID    string `json:"roleId"`
}

func toChannelRoleObject(channelRole *models.ChannelRole) *ChannelRoleObject {
	return &ChannelRoleObject{
		ID:        channelRole.GetID(),
		UserID:    channelRole.UserID,
		ChannelID: channelRole.ChannelID,
		RoleID:    channelRole.RoleID,
	}
}

// NewRouter registers all channel access REST API routes.
func (s *AccessServer) NewRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.HealthCheck)

	// Desired set reconciliation. Create and update share semantics.
	mux.HandleFunc("POST /v1/users/{userId}/channel-roles", s.SaveChannelRoles)
	mux.HandleFunc("PUT /v1/users/{userId}/channel-roles", s.SaveChannelRoles)

	mux.HandleFunc("GET /v1/users/{userId}/channel-roles", s.ListChannelRoles)
	mux.HandleFunc("GET /v1/users/{userId}/permissions", s.GetPermissions)

	// Single assignment maintenance.
	mux.HandleFunc("PUT /v1/channel-roles/{id}", s.UpdateAssociation)
	mux.HandleFunc("DELETE /v1/channel-roles/{id}", s.DeleteAssociation)

	return mux
}

func (s *AccessServer) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SaveChannelRoles reconciles the user's persisted assignments to the
// supplied desired set.
func (s *AccessServer) SaveChannelRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		s.writeClientError(w, "user id is required", http.StatusBadRequest)
		return
	}

	var req SaveChannelRolesRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := s.AccessBusiness.SaveChannelRoles(ctx, models.ID(userID), req.Pairs)
	if err != nil {
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusNoContent, nil)
}

// ListChannelRoles pages through the user's persisted assignments.
func (s *AccessServer) ListChannelRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		s.writeClientError(w, "user id is required", http.StatusBadRequest)
		return
	}

	urlQuery := r.URL.Query()

	count, err := strconv.Atoi(urlQuery.Get("count"))
	if err != nil || count <= 0 {
		count = s.listDefaultCount
		if count <= 0 {
			count = defaultListCount
		}
	}

	lastChannelRoleID := urlQuery.Get("lastChannelRoleId")

	channelRoles, err := s.AssociationBusiness.List(ctx, userID, lastChannelRoleID, count)
	if err != nil {
		s.handleBusinessError(ctx, w, err)
		return
	}

	channelRoleObjects := make([]*ChannelRoleObject, 0, len(channelRoles))
	for _, channelRole := range channelRoles {
		channelRoleObjects = append(channelRoleObjects, toChannelRoleObject(channelRole))
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"data": channelRoleObjects})
}

// GetPermissions returns the per channel permission view of the user.
func (s *AccessServer) GetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		s.writeClientError(w, "user id is required", http.StatusBadRequest)
		return
	}

	view, err := s.AccessBusiness.PermissionsForUser(ctx, models.ID(userID))
	if err != nil {
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"data": view})
}

// UpdateAssociation replaces all three references of one assignment.
func (s *AccessServer) UpdateAssociation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	associationID := r.PathValue("id")
	if associationID == "" {
		s.writeClientError(w, "assignment id is required", http.StatusBadRequest)
		return
	}

	var req UpdateAssociationRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	channelRole, err := s.AssociationBusiness.Update(ctx, associationID,
		req.UserID.String(), req.ChannelID.String(), req.RoleID.String())
	if err != nil {
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toChannelRoleObject(channelRole))
}

// DeleteAssociation removes one assignment. A removal the store refuses is
// reported as a not-deleted result rather than a plain failure.
func (s *AccessServer) DeleteAssociation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	associationID := r.PathValue("id")
	if associationID == "" {
		s.writeClientError(w, "assignment id is required", http.StatusBadRequest)
		return
	}

	result, err := s.AssociationBusiness.Delete(ctx, associationID)
	if err != nil {
		s.handleBusinessError(ctx, w, err)
		return
	}

	if !result.Deleted {
		s.writeJSON(w, http.StatusConflict, map[string]any{
			"deleted": false,
			"message": result.Message,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

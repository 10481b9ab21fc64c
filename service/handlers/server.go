package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/util"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sokoni/service-channel-access/config"
	"github.com/sokoni/service-channel-access/internal/errorutil"
	"github.com/sokoni/service-channel-access/service/business"
	"github.com/sokoni/service-channel-access/service/repository"
)

const defaultMaxBodyBytes = 1 << 20 // 1 MiB

// AccessServer handles the HTTP API of the channel access service.
type AccessServer struct {
	Service *frame.Service

	AssociationBusiness business.AssociationBusiness
	AccessBusiness      business.AccessBusiness

	maxBodyBytes     int64
	listDefaultCount int
}

// NewAccessServer wires the repositories and business layers off the
// service container.
func NewAccessServer(ctx context.Context, svc *frame.Service) *AccessServer {
	dbPool := svc.DatastoreManager().GetPool(ctx, datastore.DefaultPoolName)
	workMan := svc.WorkManager()
	evtsMan := svc.EventsManager()

	cfg, _ := svc.Config().(*config.ChannelAccessConfig)

	userRepo := repository.NewAdminUserRepository(ctx, dbPool, workMan)
	channelRepo := repository.NewChannelRepository(ctx, dbPool, workMan)
	roleRepo := repository.NewRoleRepository(ctx, dbPool, workMan)
	channelRoleRepo := repository.NewChannelRoleRepository(ctx, dbPool, workMan)

	associationBiz := business.NewAssociationBusiness(ctx, userRepo, channelRepo, roleRepo, channelRoleRepo)
	accessBiz := business.NewAccessBusiness(ctx, cfg, evtsMan, associationBiz)

	listDefaultCount := defaultListCount
	if cfg != nil && cfg.ListDefaultCount > 0 {
		listDefaultCount = cfg.ListDefaultCount
	}

	return &AccessServer{
		Service:             svc,
		AssociationBusiness: associationBiz,
		AccessBusiness:      accessBiz,
		maxBodyBytes:        defaultMaxBodyBytes,
		listDefaultCount:    listDefaultCount,
	}
}

func (s *AccessServer) decodeBody(r *http.Request, dst any) error {
	limit := s.maxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(nil, r.Body, limit)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON writes a JSON response with the given status code.
func (s *AccessServer) writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *AccessServer) writeClientError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// handleBusinessError maps a business error onto an HTTP response. Rejected
// operations carry the failing id or underlying cause in the message.
func (s *AccessServer) handleBusinessError(ctx context.Context, w http.ResponseWriter, err error) {
	log := util.Log(ctx)

	err = errorutil.ErrToAPI(err)

	switch status.Code(err) {
	case codes.NotFound:
		s.writeClientError(w, status.Convert(err).Message(), http.StatusNotFound)
	case codes.InvalidArgument:
		s.writeClientError(w, status.Convert(err).Message(), http.StatusBadRequest)
	case codes.Internal:
		log.WithError(err).Error("internal error processing request")
		s.writeClientError(w, status.Convert(err).Message(), http.StatusInternalServerError)
	default:
		log.WithError(err).Error("internal error processing request")
		s.writeClientError(w, "internal server error", http.StatusInternalServerError)
	}
}

package main

import (
	"context"
	"net/http"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/util"

	"github.com/sokoni/service-channel-access/config"
	"github.com/sokoni/service-channel-access/service/events"
	"github.com/sokoni/service-channel-access/service/handlers"
	"github.com/sokoni/service-channel-access/service/repository"
)

func main() {
	serviceName := "service_channel_access"
	ctx := context.Background()

	cfg, err := frame.ConfigLoadWithOIDC[config.ChannelAccessConfig](ctx)
	if err != nil {
		util.Log(ctx).With("err", err).Error("could not process configs")
		return
	}

	ctx, svc := frame.NewServiceWithContext(ctx, serviceName,
		frame.WithConfig(&cfg), frame.WithDatastore())
	defer svc.Stop(ctx)
	log := svc.Log(ctx)

	// Handle database migration if requested
	if handleDatabaseMigration(ctx, svc, cfg, log) {
		return
	}

	// Register for JWT
	err = svc.RegisterForJwt(ctx)
	if err != nil {
		log.WithError(err).Fatal("main -- could not register for jwt")
	}

	implementation := handlers.NewAccessServer(ctx, svc)

	serviceOptions := setupHTTPHandlers(svc, implementation, cfg, serviceName)

	accessChangedQueuePublisher := frame.WithRegisterPublisher(
		cfg.QueueAccessChangedName,
		cfg.QueueAccessChangedURI,
	)

	dbPool := svc.DatastoreManager().GetPool(ctx, datastore.DefaultPoolName)
	channelRoleRepo := repository.NewChannelRoleRepository(ctx, dbPool, svc.WorkManager())

	serviceOptions = append(serviceOptions,
		accessChangedQueuePublisher,
		frame.WithRegisterEvents(
			events.NewAccessChangedQueue(ctx, svc, channelRoleRepo),
		))

	svc.Init(ctx, serviceOptions...)

	log.WithField("server http port", cfg.HTTPPort()).
		Info(" Initiating server operations")

	err = svc.Run(ctx, "")
	if err != nil {
		log.WithError(err).Fatal("could not run Server")
	}
}

// handleDatabaseMigration performs database migration if configured to do so.
func handleDatabaseMigration(
	ctx context.Context,
	svc *frame.Service,
	cfg config.ChannelAccessConfig,
	log *util.LogEntry,
) bool {
	if !cfg.DoDatabaseMigrate() {
		return false
	}

	err := repository.Migrate(ctx, svc.DatastoreManager(), cfg.GetDatabaseMigrationPath())
	if err != nil {
		log.WithError(err).Fatal("main -- Could not migrate successfully")
	}
	return true
}

// setupHTTPHandlers mounts the REST surface behind the authentication
// middleware.
func setupHTTPHandlers(
	svc *frame.Service,
	implementation *handlers.AccessServer,
	cfg config.ChannelAccessConfig,
	serviceName string,
) []frame.Option {
	jwtAudience := cfg.Oauth2JwtVerifyAudience
	if jwtAudience == "" {
		jwtAudience = serviceName
	}

	accessServiceRestHandlers := svc.AuthenticationMiddleware(
		implementation.NewRouter(), jwtAudience, cfg.Oauth2JwtVerifyIssuer)

	rootMux := http.NewServeMux()
	rootMux.Handle("/", accessServiceRestHandlers)

	return []frame.Option{frame.WithHTTPHandler(rootMux)}
}

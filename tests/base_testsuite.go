package tests

import (
	"context"
	"testing"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/config"
	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/frametests"
	"github.com/pitabwire/frame/frametests/definition"
	"github.com/pitabwire/frame/frametests/deps/testpostgres"
	"github.com/pitabwire/util"
	"github.com/stretchr/testify/require"

	aconfig "github.com/sokoni/service-channel-access/config"
	"github.com/sokoni/service-channel-access/service/events"
	"github.com/sokoni/service-channel-access/service/models"
	"github.com/sokoni/service-channel-access/service/repository"
)

const PostgresqlDBImage = "postgres:latest"

const (
	DefaultRandomStringLength = 8
)

type ChannelAccessBaseTestSuite struct {
	frametests.FrameBaseTestSuite
}

func initResources(_ context.Context) []definition.TestResource {
	pg := testpostgres.NewWithOpts("service_channel_access", definition.WithUserName("sokoni"))
	resources := []definition.TestResource{pg}
	return resources
}

func (bs *ChannelAccessBaseTestSuite) SetupSuite() {
	bs.InitResourceFunc = initResources
	bs.FrameBaseTestSuite.SetupSuite()
}

func (bs *ChannelAccessBaseTestSuite) CreateService(
	t *testing.T,
	depOpts *definition.DependencyOption,
) (context.Context, *frame.Service) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	ctx := t.Context()
	cfg, err := config.FromEnv[aconfig.ChannelAccessConfig]()
	require.NoError(t, err)

	cfg.LogLevel = "debug"
	cfg.RunServiceSecurely = false
	cfg.ServerPort = ""
	cfg.DatabaseMigrate = true

	res := depOpts.ByIsDatabase(ctx)
	testDS, cleanup, err0 := res.GetRandomisedDS(t.Context(), depOpts.Prefix())
	require.NoError(t, err0)

	t.Cleanup(func() {
		cleanup(t.Context())
	})

	cfg.DatabasePrimaryURL = []string{testDS.String()}
	cfg.DatabaseReplicaURL = []string{testDS.String()}

	ctx, svc := frame.NewServiceWithContext(t.Context(),
		frame.WithName("channel access tests"),
		frame.WithConfig(&cfg),
		frame.WithDatastore(),
		frametests.WithNoopDriver())

	accessChangedQueuePublisher := frame.WithRegisterPublisher(
		cfg.QueueAccessChangedName,
		cfg.QueueAccessChangedURI,
	)

	workMan := svc.WorkManager()
	dbPool := svc.DatastoreManager().GetPool(ctx, datastore.DefaultPoolName)

	channelRoleRepo := repository.NewChannelRoleRepository(ctx, dbPool, workMan)

	svc.Init(ctx,
		accessChangedQueuePublisher,
		frame.WithRegisterEvents(
			events.NewAccessChangedQueue(ctx, svc, channelRoleRepo),
		),
	)

	err = repository.Migrate(ctx, svc.DatastoreManager(), "../migrations/0001")
	require.NoError(t, err)

	err = svc.Run(ctx, "")
	require.NoError(t, err)

	return ctx, svc
}

// CreateTestUser persists an administrator account for use as a reference
// target in assignment tests.
func (bs *ChannelAccessBaseTestSuite) CreateTestUser(
	ctx context.Context,
	userRepo repository.AdminUserRepository,
	identifier string,
) (*models.AdminUser, error) {
	user := &models.AdminUser{Identifier: identifier}
	user.GenID(ctx)

	err := userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTestChannel persists a channel with the given token and code.
func (bs *ChannelAccessBaseTestSuite) CreateTestChannel(
	ctx context.Context,
	channelRepo repository.ChannelRepository,
	token, code string,
) (*models.Channel, error) {
	channel := &models.Channel{Token: token, Code: code}
	channel.GenID(ctx)

	err := channelRepo.Create(ctx, channel)
	if err != nil {
		return nil, err
	}
	return channel, nil
}

// CreateTestRole persists a named role carrying the given permission codes.
func (bs *ChannelAccessBaseTestSuite) CreateTestRole(
	ctx context.Context,
	roleRepo repository.RoleRepository,
	name string,
	permissions []string,
) (*models.Role, error) {
	role := &models.Role{Name: name, Permissions: permissions}
	role.GenID(ctx)

	err := roleRepo.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	return role, nil
}

// NewChannelRole persists an assignment linking the given user, channel and
// role directly, bypassing the business layer checks.
func NewChannelRole(
	ctx context.Context,
	channelRoleRepo repository.ChannelRoleRepository,
	user *models.AdminUser,
	channel *models.Channel,
	role *models.Role,
) (*models.ChannelRole, error) {
	channelRole := &models.ChannelRole{
		UserID:    user.GetID(),
		User:      *user,
		ChannelID: channel.GetID(),
		Channel:   *channel,
		RoleID:    role.GetID(),
		Role:      *role,
	}
	channelRole.GenID(ctx)

	err := channelRoleRepo.Create(ctx, channelRole)
	if err != nil {
		return nil, err
	}
	return channelRole, nil
}

func (bs *ChannelAccessBaseTestSuite) TearDownSuite() {
	bs.FrameBaseTestSuite.TearDownSuite()
}

// WithTestDependancies Creates subtests with each known DependancyOption.
func (bs *ChannelAccessBaseTestSuite) WithTestDependancies(
	t *testing.T,
	testFn func(t *testing.T, dep *definition.DependencyOption),
) {
	options := []*definition.DependencyOption{
		definition.NewDependancyOption(
			"default",
			util.RandomString(DefaultRandomStringLength),
			bs.Resources(),
		),
	}

	frametests.WithTestDependencies(t, options, testFn)
}

package server

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	"github.com/zhukovvlad/estimator-go/cmd/internal/cache"
	"github.com/zhukovvlad/estimator-go/cmd/internal/config"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/bulkupload"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/teams"
	"github.com/zhukovvlad/estimator-go/cmd/internal/testutil"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testServerConfig() *config.Config {
	debug := false
	cfg := &config.Config{IsDebug: &debug}
	cfg.Auth.JWTSecret = "test-secret-key-minimum-32-chars-long"
	cfg.Auth.TokenTTL = 15 * time.Minute
	cfg.Upload.DefaultBatchSize = bulkupload.DefaultBatchSize
	cfg.Upload.MaxMemoryMB = 1
	cfg.Upload.RatePerSecond = 100
	cfg.Upload.Burst = 100
	cfg.CORS.AllowedOrigins = []string{"https://estimator.example.com"}
	return cfg
}

// testEnv - сервер поверх in-memory хранилища и одна залогиненная команда.
type testEnv struct {
	server *Server
	http   *testutil.TestServer
	store  *testutil.MemoryStore
	teamID int64
	token  string
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	store := testutil.NewMemoryStore()
	logger := logging.NewTestLogger()
	team := store.SeedTeam("core", testutil.TestPasscodeHash)

	srv := NewServer(
		store,
		logger,
		catalog.NewCatalogService(store, logger),
		bulkupload.NewService(store, logger, cfg.Debug()),
		teams.NewSearchService(store, cache.NewMemoryCache(), time.Minute, logger),
		cfg,
	)
	env := &testEnv{
		server: srv,
		http:   &testutil.TestServer{Router: srv.router},
		store:  store,
		teamID: team.ID,
	}
	env.token = env.login(t, "core", testutil.TestPasscode)
	return env
}

func (e *testEnv) login(t *testing.T, team, passcode string) string {
	t.Helper()

	w := e.http.MakePostRequest(t, "/api/v1/auth/login", api_models.LoginRequest{TeamName: team, Passcode: passcode}, nil)
	var resp api_models.LoginResponse
	testutil.AssertResponse(t, w, http.StatusOK, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (e *testEnv) auth() map[string]string {
	return testutil.WithAuth(e.token)
}

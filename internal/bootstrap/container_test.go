package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"companion-learning-be/internal/config"
	"companion-learning-be/internal/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Environment:   "test",
			LogFilePath:   filepath.Join(dir, "app.log"),
			WsLogFilePath: filepath.Join(dir, "ws.log"),
		},
		Database: config.DatabaseConfig{Driver: config.StoreDriverMemory},
		Identity: config.IdentityConfig{JwtSecret: "secret"},
		Events:   config.EventsConfig{RevalidateTopic: "VIEW_INVALIDATED"},
	}
}

func TestNewContainer_MemoryStoreWithoutBrokers(t *testing.T) {
	c, err := NewContainer(nil, testConfig(t))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.ConsumerService.Consume(context.Background()))

	app := fiber.New()
	c.CompanionController.RegisterRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/companions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewContainer_RequiresVerifierKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.Identity.JwtSecret = ""

	_, err := NewContainer(nil, cfg)
	assert.ErrorIs(t, err, identity.ErrNoVerifierKey)
}

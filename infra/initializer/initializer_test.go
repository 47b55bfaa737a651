package initializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amirasaad/dodopayments-go/pkg/config"
	"github.com/amirasaad/dodopayments-go/pkg/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dodo *config.DodoPayments) *config.App {
	return &config.App{
		Env:          "test",
		Log:          &config.Log{Level: int(slog.LevelDebug), Format: "json", TimeFormat: "15:04:05", Prefix: "[test]"},
		DodoPayments: dodo,
	}
}

func TestInitializeDependencies_WithoutAPIKey(t *testing.T) {
	var logs bytes.Buffer
	deps, err := InitializeDependencies(testConfig(&config.DodoPayments{Environment: "live_mode"}), WithLogOutput(&logs))
	require.NoError(t, err)

	assert.Nil(t, deps.Endpoint)
	assert.NotNil(t, deps.Logger)
	assert.Contains(t, deps.Models.Names(), "CheckoutSessionRequest")
	assert.Contains(t, logs.String(), "URL building disabled")
}

func TestInitializeDependencies_WithAPIKey(t *testing.T) {
	var logs bytes.Buffer
	deps, err := InitializeDependencies(
		testConfig(&config.DodoPayments{ApiKey: "sk_test_1234567", Environment: "test_mode"}),
		WithLogOutput(&logs),
	)
	require.NoError(t, err)
	require.NotNil(t, deps.Endpoint)

	u, err := deps.Endpoint.URL(endpoint.RetrieveCheckoutSession, endpoint.RetrieveCheckoutSessionParams{ID: "cks_1"})
	require.NoError(t, err)
	assert.Equal(t, "https://test.dodopayments.com/checkouts/cks_1", u.String())
	assert.NotContains(t, logs.String(), "sk_test_1234567", "the API key is never logged")
}

func TestInitializeDependencies_InvalidEnvironment(t *testing.T) {
	_, err := InitializeDependencies(
		testConfig(&config.DodoPayments{ApiKey: "sk", Environment: "staging"}),
		WithLogOutput(&bytes.Buffer{}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, endpoint.ErrInvalidConfig)
}

func TestSetupLogger_JSON(t *testing.T) {
	var out bytes.Buffer
	logger := setupLogger(&config.Log{Level: int(slog.LevelInfo), Format: "json", Prefix: "[dodo]"}, &out)

	logger.Debug("hidden")
	logger.Info("decoded", "model", "Payment")

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "decoded", entry["msg"])
	assert.Equal(t, "Payment", entry["model"])
	assert.Same(t, logger, slog.Default())
}

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SpaceXLaunchDashboard/internal/config"
	"SpaceXLaunchDashboard/internal/dataset"
	"SpaceXLaunchDashboard/internal/handler"
	"SpaceXLaunchDashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../internal/dataset/testdata/spacex_launch_dash.csv"

func init() {
	gin.SetMode(gin.TestMode)
}

func buildRouter(t *testing.T, env map[string]string) *gin.Engine {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	table, err := dataset.Load(context.Background(), fixture)
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	dash, err := handler.NewDashboard(table, observability.NewMetrics(reg))
	require.NoError(t, err)

	router, err := newRouter(cfg, dash, reg)
	require.NoError(t, err)
	return router
}

func health(router *gin.Engine, remote, forwardedFor string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = remote
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	router.ServeHTTP(w, req)
	return w.Code
}

func TestNewRouter_IgnoresForwardedForByDefault(t *testing.T) {
	router := buildRouter(t, map[string]string{
		"DASHBOARD_RATE_LIMIT_PER_SECOND": "0.001",
		"DASHBOARD_RATE_LIMIT_BURST":      "1",
	})

	assert.Equal(t, http.StatusOK, health(router, "10.1.0.1:1", "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, health(router, "10.1.0.1:1", "203.0.113.2"))
}

func TestNewRouter_TrustedProxyForwardsClientIP(t *testing.T) {
	router := buildRouter(t, map[string]string{
		"DASHBOARD_RATE_LIMIT_PER_SECOND": "0.001",
		"DASHBOARD_RATE_LIMIT_BURST":      "1",
		"DASHBOARD_TRUSTED_PROXIES":       "10.2.0.1",
	})

	assert.Equal(t, http.StatusOK, health(router, "10.2.0.1:1", "203.0.113.1"))
	assert.Equal(t, http.StatusOK, health(router, "10.2.0.1:1", "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, health(router, "10.2.0.1:1", "203.0.113.1"))
}

func TestNewRouter_InvalidTrustedProxy(t *testing.T) {
	t.Setenv("DASHBOARD_TRUSTED_PROXIES", "not-an-ip")
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	table, err := dataset.Load(context.Background(), fixture)
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	dash, err := handler.NewDashboard(table, observability.NewMetrics(reg))
	require.NoError(t, err)

	_, err = newRouter(cfg, dash, reg)
	assert.Error(t, err)
}

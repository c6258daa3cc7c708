package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/siswa/internal/config"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	cfg := &config.Config{}
	cfg.Server.Port = "9090"
	cfg.Server.ReadTimeout = "3s"
	cfg.Server.WriteTimeout = "bogus"
	cfg.Server.IdleTimeout = "1m"
	cfg.Server.ShutdownTimeout = "1s"

	srv := New(cfg, router, zerolog.Nop())

	assert.Equal(t, ":9090", srv.http.Addr)
	assert.Equal(t, 3*time.Second, srv.http.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.http.WriteTimeout)
	assert.Equal(t, time.Minute, srv.http.IdleTimeout)

	rec := httptest.NewRecorder()
	srv.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", rec.Body.String())

	assert.NoError(t, srv.Shutdown(context.Background()))
}

package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")

	app, err := New(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.MemoryStore)
	assert.Nil(t, app.DB)
	assert.Nil(t, app.RedisClient)
	assert.Equal(t, ":8080", app.Server.Addr)
	assert.Equal(t, logrus.ErrorLevel, app.Log.GetLevel())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(`{"name":"Dr. X","specialty":"GP"}`))
	app.Server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNew_RedisLock(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOCK_DRIVER", "redis")
	t.Setenv("REDIS_HOST", mr.Host())
	t.Setenv("REDIS_PORT", mr.Port())

	app, err := New(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.RedisClient)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(`{"name":"Ann","email":"ann@x.com"}`))
	app.Server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The lock is released once the request completes.
	assert.Empty(t, mr.Keys())
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := New(filepath.Join(t.TempDir(), ".env"))
	assert.ErrorContains(t, err, "failed to load config")
}

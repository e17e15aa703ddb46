package config_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/cli/config"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

func TestRepository_Configure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		repo, err := config.NewRepositoryForTest(config.BackendMemory, "", "").Configure(t.Context())
		gt.NoError(t, err).Required()
		defer func() { gt.NoError(t, repo.Close()) }()

		gt.NoError(t, repo.Put(t.Context(), types.StorageKeyCoachEmail, []byte("coach@example.com")))
		got, err := repo.Get(t.Context(), types.StorageKeyCoachEmail)
		gt.NoError(t, err)
		gt.Value(t, string(got)).Equal("coach@example.com")
	})

	t.Run("sqlite backend creates the database file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "coachnote.db")
		repo, err := config.NewRepositoryForTest(config.BackendSQLite, path, "laptop").Configure(t.Context())
		gt.NoError(t, err).Required()
		defer func() { gt.NoError(t, repo.Close()) }()

		got, err := repo.Get(t.Context(), types.StorageKeySession)
		gt.NoError(t, err)
		gt.Value(t, got).Nil()
	})

	t.Run("sqlite backend needs a path", func(t *testing.T) {
		_, err := config.NewRepositoryForTest(config.BackendSQLite, "", "").Configure(t.Context())
		gt.Error(t, err).Is(config.ErrMissingSQLitePath)
	})

	t.Run("redis backend needs an address", func(t *testing.T) {
		_, err := config.NewRepositoryForTest(config.BackendRedis, "", "").Configure(t.Context())
		gt.Error(t, err).Is(config.ErrMissingRedisAddr)
	})

	t.Run("firestore backend needs a project", func(t *testing.T) {
		_, err := config.NewRepositoryForTest(config.BackendFirestore, "", "").Configure(t.Context())
		gt.Error(t, err).Is(config.ErrMissingProjectID)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("postgres", "", "").Configure(t.Context())
		gt.Error(t, err).Is(config.ErrInvalidBackend)
	})
}

func TestRepository_DeviceID(t *testing.T) {
	gt.Value(t, config.NewRepositoryForTest(config.BackendMemory, "", "").DeviceID()).Equal(types.DefaultDeviceID)
	gt.Value(t, config.NewRepositoryForTest(config.BackendMemory, "", "tablet").DeviceID()).Equal(types.DeviceID("tablet"))
}

package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/repository/firestore"
	"github.com/secmon-lab/coachnote/pkg/repository/memory"
	"github.com/secmon-lab/coachnote/pkg/repository/redis"
	"github.com/secmon-lab/coachnote/pkg/repository/sqlite"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendRedis     = "redis"
	BackendFirestore = "firestore"

	DefaultSQLitePath = ".coachnote/coachnote.db"
)

// Repository holds CLI flags for the device storage backend
type Repository struct {
	backend  string
	deviceID string

	sqlitePath string

	redisAddr     string
	redisPassword string
	redisDB       int
	redisTTL      time.Duration

	projectID        string
	databaseID       string
	collectionPrefix string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory, sqlite, redis or firestore)",
			Value:       BackendSQLite,
			Sources:     cli.EnvVars("COACHNOTE_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "device-id",
			Usage:       "Device ID that scopes every stored entry",
			Value:       types.DefaultDeviceID.String(),
			Sources:     cli.EnvVars("COACHNOTE_DEVICE_ID"),
			Destination: &r.deviceID,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file (sqlite backend)",
			Value:       DefaultSQLitePath,
			Sources:     cli.EnvVars("COACHNOTE_SQLITE_PATH"),
			Destination: &r.sqlitePath,
		},
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address host:port (redis backend)",
			Sources:     cli.EnvVars("COACHNOTE_REDIS_ADDR"),
			Destination: &r.redisAddr,
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Sources:     cli.EnvVars("COACHNOTE_REDIS_PASSWORD"),
			Destination: &r.redisPassword,
		},
		&cli.IntFlag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Sources:     cli.EnvVars("COACHNOTE_REDIS_DB"),
			Destination: &r.redisDB,
		},
		&cli.DurationFlag{
			Name:        "redis-ttl",
			Usage:       "Expiration of stored entries, 0 keeps them forever",
			Sources:     cli.EnvVars("COACHNOTE_REDIS_TTL"),
			Destination: &r.redisTTL,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("COACHNOTE_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("COACHNOTE_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix for Firestore collection names",
			Sources:     cli.EnvVars("COACHNOTE_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &r.collectionPrefix,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// DeviceID returns the configured device scope, falling back to the default device
func (r *Repository) DeviceID() types.DeviceID {
	if r.deviceID == "" {
		return types.DefaultDeviceID
	}
	return types.DeviceID(r.deviceID)
}

// LogAttrs returns log attributes for the repository configuration
func (r *Repository) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("backend", r.backend),
		slog.String("device_id", r.DeviceID().String()),
	}
	switch r.backend {
	case BackendSQLite:
		attrs = append(attrs, slog.String("path", r.sqlitePath))
	case BackendRedis:
		attrs = append(attrs, slog.String("addr", r.redisAddr), slog.Int("db", r.redisDB))
	case BackendFirestore:
		attrs = append(attrs, slog.String("project_id", r.projectID), slog.String("database_id", r.databaseID))
	}
	return attrs
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	device := r.DeviceID()

	switch r.backend {
	case BackendMemory:
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	case "", BackendSQLite:
		if r.sqlitePath == "" {
			return nil, goerr.Wrap(ErrMissingSQLitePath, "failed to configure sqlite repository")
		}
		repo, err := sqlite.New(ctx, r.sqlitePath, device)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		logging.Default().Info("Using SQLite repository", "path", r.sqlitePath, "device_id", device)
		return repo, nil

	case BackendRedis:
		if r.redisAddr == "" {
			return nil, goerr.Wrap(ErrMissingRedisAddr, "failed to configure redis repository")
		}
		var opts []redis.Option
		if r.redisTTL > 0 {
			opts = append(opts, redis.WithTTL(r.redisTTL))
		}
		repo, err := redis.New(ctx, r.redisAddr, r.redisPassword, r.redisDB, device, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize redis repository")
		}
		logging.Default().Info("Using Redis repository", "addr", r.redisAddr, "db", r.redisDB, "device_id", device)
		return repo, nil

	case BackendFirestore:
		if r.projectID == "" {
			return nil, goerr.Wrap(ErrMissingProjectID, "firestore-project-id is required when using firestore backend")
		}
		var opts []firestore.Option
		if r.collectionPrefix != "" {
			opts = append(opts, firestore.WithCollectionPrefix(r.collectionPrefix))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, device, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
			"device_id", device,
		)
		return repo, nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "failed to configure repository", goerr.V(BackendKey, r.backend))
	}
}

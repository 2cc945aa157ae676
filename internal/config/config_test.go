package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("DB_QUERY_TIMEOUT", "")
		t.Setenv("APP_BASE_URL", "")
		t.Setenv("AUTH_RATE_LIMIT", "")

		cfg := FromEnv()
		assert.Equal(t, DriverSurreal, cfg.GetStoreDriver())
		assert.Equal(t, 5*time.Second, cfg.GetDBQueryTimeout())
		assert.Equal(t, 10*time.Second, cfg.GetDBExecuteTimeout())
		assert.Equal(t, "http://localhost:8080", cfg.GetAppBaseURL())
		assert.Equal(t, float64(10), cfg.GetAuthRateLimit())
		assert.Equal(t, "log", cfg.GetEmailProvider())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "Redis")
		t.Setenv("DB_QUERY_TIMEOUT", "3")
		t.Setenv("DB_EXECUTE_TIMEOUT", "1500ms")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("APP_BASE_URL", "https://folio.example.com/")

		cfg := FromEnv()
		assert.Equal(t, DriverRedis, cfg.GetStoreDriver())
		assert.Equal(t, 3*time.Second, cfg.GetDBQueryTimeout())
		assert.Equal(t, 1500*time.Millisecond, cfg.GetDBExecuteTimeout())
		assert.Equal(t, 2, cfg.GetRedisDB())
		assert.Equal(t, "https://folio.example.com", cfg.GetAppBaseURL())
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("REDIS_DB", "two")
		t.Setenv("DB_QUERY_TIMEOUT", "soon")
		t.Setenv("AUTH_RATE_LIMIT", "-1")

		cfg := FromEnv()
		assert.Equal(t, 0, cfg.GetRedisDB())
		assert.Equal(t, 5*time.Second, cfg.GetDBQueryTimeout())
		assert.Equal(t, float64(10), cfg.GetAuthRateLimit())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "surreal missing url",
			cfg:     Config{StoreDriver: DriverSurreal, DBNs: "ns", DBDb: "db", SessionSecret: "s"},
			wantErr: "SURREAL_URL",
		},
		{
			name: "surreal complete",
			cfg:  Config{StoreDriver: DriverSurreal, DBUrl: "ws://localhost:8000", DBNs: "ns", DBDb: "db", SessionSecret: "s"},
		},
		{
			name: "redis complete",
			cfg:  Config{StoreDriver: DriverRedis, RedisAddr: "localhost:6379", SessionSecret: "s"},
		},
		{
			name:    "firestore missing api key",
			cfg:     Config{StoreDriver: DriverFirestore, FirebaseProjectID: "p", SessionSecret: "s"},
			wantErr: "FIREBASE_API_KEY",
		},
		{
			name:    "missing session secret",
			cfg:     Config{StoreDriver: DriverRedis, RedisAddr: "localhost:6379"},
			wantErr: "SESSION_SECRET",
		},
		{
			name:    "unknown driver",
			cfg:     Config{StoreDriver: "mongo"},
			wantErr: "unknown STORE_DRIVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

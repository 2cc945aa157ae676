package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/joho/godotenv"
)

// ConfigForTests loads .env.test from the project root when it exists and
// returns the resulting configuration. Values already set in the process
// environment win over the file.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	if root, ok := projectRoot(); ok {
		env, err := godotenv.Read(filepath.Join(root, ".env.test"))
		if err == nil {
			for key, value := range env {
				if _, set := os.LookupEnv(key); !set {
					t.Setenv(key, value)
				}
			}
		}
	}

	return config.FromEnv()
}

// RequireSurreal skips the test under -short or when no SurrealDB endpoint
// is configured.
func RequireSurreal(t *testing.T) config.Provider {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping SurrealDB integration test in short mode")
	}
	cfg := ConfigForTests(t)
	if cfg.GetDBURL() == "" {
		t.Skip("SURREAL_URL not set, skipping SurrealDB integration test")
	}
	return cfg
}

// RequireFirestore skips the test unless a Firestore emulator or project is
// configured.
func RequireFirestore(t *testing.T) config.Provider {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Firestore integration test in short mode")
	}
	cfg := ConfigForTests(t)
	if cfg.GetFirebaseProjectID() == "" || os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIREBASE_PROJECT_ID or FIRESTORE_EMULATOR_HOST not set, skipping Firestore integration test")
	}
	return cfg
}

func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}

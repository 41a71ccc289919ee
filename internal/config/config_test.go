package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func resetEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("CLIENT_URL", "")
}

func TestLoadConfig(t *testing.T) {
	resetEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "my-project")
	t.Setenv("STORAGE_BUCKET", "my-project.appspot.com")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CLIENT_URL", "https://app.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "my-project", cfg.FirebaseProjectID)
	require.Equal(t, "my-project.appspot.com", cfg.StorageBucket)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "https://app.example.com", cfg.ClientURL)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "my-project")
	t.Setenv("STORAGE_BUCKET", "my-project.appspot.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "debug", cfg.GinMode)
}

func TestLoadConfig_MissingProjectID(t *testing.T) {
	resetEnv(t)
	t.Setenv("STORAGE_BUCKET", "my-project.appspot.com")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}

func TestLoadConfig_MissingStorageBucket(t *testing.T) {
	resetEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "my-project")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "STORAGE_BUCKET")
}

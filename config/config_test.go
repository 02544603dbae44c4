package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testYAML = `
env:
  env: develop
  serviceName: medlink
  log:
    level: debug
http:
  port: 8080
  cors:
    allowOrigins:
      - http://localhost:5173
secretKey:
  access: ""
auth:
  tokenTTL: 48h
pubsub:
  provider: local
  localEndpoint: http://localhost:8081/push
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "medlinktest.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("PUBSUB_PROVIDER", "google")

	cfg, err := LoadWithEnv[Config]("medlinktest")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "google", cfg.PubSub.Provider)
	assert.Equal(t, "http://localhost:8081/push", cfg.PubSub.LocalEndpoint)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{TokenTTL: time.Hour}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultResetTokenTTL, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, defaultMinPasswordLength, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, defaultMaxPasswordLength, cfg.PasswordPolicy.MaxLength)
	assert.Equal(t, int64(defaultMaxAvatarBytes), cfg.Storage.MaxAvatarBytes)
	assert.NotNil(t, cfg.Database)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Firebase)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.Worker)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "certs", cfg.Pass.CertsDir)
	assert.Equal(t, filepath.Join("certs", "pass.pem"), cfg.Pass.CertPath())
	assert.Equal(t, filepath.Join("certs", "pass.key"), cfg.Pass.KeyPath())
	assert.Equal(t, filepath.Join("certs", "wwdr.pem"), cfg.Pass.WWDRPath())
	assert.Equal(t, DefaultPassphrase, cfg.Pass.KeyPassphrase)
	assert.Equal(t, filepath.Join("passTemplate", "loyalty.pass"), cfg.Pass.TemplateDir)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "debug"
  shutdown_timeout: "3s"
pass:
  certs_dir: "/etc/pass"
  cert_file: "signer.pem"
  key_file: "signer.key"
  wwdr_file: "AppleWWDRCAG4.pem"
  key_passphrase: "from-file"
  template_dir: "/srv/templates/loyalty.pass"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "/etc/pass/signer.pem", cfg.Pass.CertPath())
	assert.Equal(t, "/etc/pass/signer.key", cfg.Pass.KeyPath())
	assert.Equal(t, "/etc/pass/AppleWWDRCAG4.pem", cfg.Pass.WWDRPath())
	assert.Equal(t, "from-file", cfg.Pass.KeyPassphrase)
	assert.Equal(t, "/srv/templates/loyalty.pass", cfg.Pass.TemplateDir)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("/non/existent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LPS_SERVER_HOST", "127.0.0.2")
	t.Setenv("LPS_PASS_CERTS_DIR", "/run/secrets")
	t.Setenv("LPS_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.2", cfg.Server.Host)
	assert.Equal(t, "/run/secrets", cfg.Pass.CertsDir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("PASSKEY_PASSPHRASE", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Pass.KeyPassphrase)
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("LPS_SERVER_PORT", "5000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("LPS_SERVER_MODE", "production")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production")
}

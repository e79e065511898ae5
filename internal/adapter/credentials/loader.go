package credentials

import (
	"fmt"

	"loyalty-pass-service/config"
	"loyalty-pass-service/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Load reads the signer certificate, signer key and WWDR certificate from fs.
// A missing or unreadable file is logged and left empty; startup never fails
// here, pass generation does instead.
func Load(fs afero.Fs, cfg config.PassConfig, log zerolog.Logger) *domain.Credentials {
	creds := &domain.Credentials{Passphrase: cfg.KeyPassphrase}

	var failed []string
	read := func(path string) []byte {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			failed = append(failed, fmt.Sprintf("reading %s: %v", path, err))
			return nil
		}
		if len(data) == 0 {
			failed = append(failed, fmt.Sprintf("reading %s: file is empty", path))
		}
		return data
	}

	creds.Certificate = read(cfg.CertPath())
	creds.PrivateKey = read(cfg.KeyPath())
	creds.WWDR = read(cfg.WWDRPath())

	if len(failed) > 0 {
		log.Warn().
			Strs("missing", creds.Missing()).
			Strs("errors", failed).
			Msg("failed to load certificates, pass generation will fail until certificates are provided")
		return creds
	}

	if cfg.KeyPassphrase == config.DefaultPassphrase {
		log.Warn().Msg("using placeholder key passphrase, set PASSKEY_PASSPHRASE")
	}
	log.Info().Str("certs_dir", cfg.CertsDir).Msg("pass signing certificates loaded")

	return creds
}

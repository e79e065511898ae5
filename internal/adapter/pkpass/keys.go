package pkpass

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/pkcs12"
)

// parseCertificate accepts a PEM or DER encoded certificate.
func parseCertificate(data []byte) (*x509.Certificate, error) {
	if block, _ := pem.Decode(data); block != nil {
		data = block.Bytes
	}
	cert, err := x509.ParseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("parsing certificate: %w", err)
	}
	return cert, nil
}

// parseSigningKey decodes the signer key. Supported forms: unencrypted
// PKCS#1/PKCS#8/SEC1 PEM, encrypted PKCS#8 PEM, legacy encrypted PEM and a
// PKCS#12 bundle. A bundle also yields its certificate, which then replaces
// the configured signer certificate.
func parseSigningKey(data []byte, passphrase string) (crypto.PrivateKey, *x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		key, cert, err := pkcs12.Decode(data, passphrase)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding PKCS#12 signer key: %w", err)
		}
		return key, cert, nil
	}

	der := block.Bytes
	switch {
	case block.Type == "ENCRYPTED PRIVATE KEY":
		key, err := pkcs8.ParsePKCS8PrivateKey(der, []byte(passphrase))
		if err != nil {
			return nil, nil, fmt.Errorf("decrypting PKCS#8 signer key: %w", err)
		}
		return key, nil, nil
	case x509.IsEncryptedPEMBlock(block): //nolint:staticcheck // legacy openssl output is still common
		var err error
		der, err = x509.DecryptPEMBlock(block, []byte(passphrase)) //nolint:staticcheck
		if err != nil {
			return nil, nil, fmt.Errorf("decrypting signer key: %w", err)
		}
	}

	key, err := parseDERKey(der)
	if err != nil {
		return nil, nil, err
	}
	return key, nil, nil
}

func parseDERKey(der []byte) (crypto.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, errors.New("unsupported signer key format")
}

// checkKeyPair fails when key does not belong to cert.
func checkKeyPair(cert *x509.Certificate, key crypto.PrivateKey) error {
	signer, ok := key.(crypto.Signer)
	if !ok {
		return fmt.Errorf("signer key of type %T cannot sign", key)
	}
	pub, ok := signer.Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok || !pub.Equal(cert.PublicKey) {
		return errors.New("signer key does not match signer certificate")
	}
	return nil
}

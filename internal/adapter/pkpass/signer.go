package pkpass

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto"
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"loyalty-pass-service/internal/core/domain"

	"go.mozilla.org/pkcs7"
)

const (
	manifestFile  = "manifest.json"
	signatureFile = "signature"
)

// Signer implements ports.PassSigner. It produces a .pkpass archive: the
// template files, the personalised pass.json, a SHA-1 manifest and a
// detached PKCS#7 signature of that manifest.
type Signer struct{}

// NewSigner creates a pass signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Sign builds and signs the archive for fields using template and creds.
func (s *Signer) Sign(ctx context.Context, template *domain.PassTemplate, creds *domain.Credentials, fields domain.PassFields) ([]byte, error) {
	if template == nil {
		return nil, errors.New("no pass template")
	}
	if !creds.Complete() {
		return nil, fmt.Errorf("incomplete signing credentials: missing %v", creds.Missing())
	}

	signerCert, err := parseCertificate(creds.Certificate)
	if err != nil {
		return nil, fmt.Errorf("signer certificate: %w", err)
	}
	key, bundled, err := parseSigningKey(creds.PrivateKey, creds.Passphrase)
	if err != nil {
		return nil, err
	}
	if bundled != nil {
		signerCert = bundled
	}
	if err := checkKeyPair(signerCert, key); err != nil {
		return nil, err
	}
	wwdr, err := parseCertificate(creds.WWDR)
	if err != nil {
		return nil, fmt.Errorf("WWDR certificate: %w", err)
	}

	passJSON, err := buildPassJSON(template.Files[domain.PassDefinitionFile], fields)
	if err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(template.Files)+2)
	for name, data := range template.Files {
		files[name] = data
	}
	files[domain.PassDefinitionFile] = passJSON

	manifest, err := buildManifest(files)
	if err != nil {
		return nil, err
	}
	files[manifestFile] = manifest

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	signature, err := signManifest(manifest, signerCert, key, wwdr)
	if err != nil {
		return nil, err
	}
	files[signatureFile] = signature

	return zipFiles(files)
}

// buildPassJSON merges the per-user fields into the template's pass.json.
// Whatever style dictionary the template used is carried over to the
// requested style so header, auxiliary and back fields survive.
func buildPassJSON(raw []byte, fields domain.PassFields) ([]byte, error) {
	pass := make(map[string]interface{})
	if err := json.Unmarshal(raw, &pass); err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", domain.PassDefinitionFile, err)
	}

	style := fields.Style
	if style == "" {
		style = domain.PassStyleGeneric
	}

	structure := make(map[string]interface{})
	for _, st := range domain.PassStyles {
		if existing, ok := pass[string(st)].(map[string]interface{}); ok {
			for k, v := range existing {
				structure[k] = v
			}
		}
		delete(pass, string(st))
	}
	structure["primaryFields"] = fields.PrimaryFields
	structure["secondaryFields"] = fields.SecondaryFields
	pass[string(style)] = structure

	if _, ok := pass["formatVersion"]; !ok {
		pass["formatVersion"] = 1
	}
	pass["serialNumber"] = fields.SerialNumber
	pass["barcodes"] = []domain.Barcode{fields.Barcode}
	pass["barcode"] = fields.Barcode

	out, err := json.Marshal(pass)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", domain.PassDefinitionFile, err)
	}
	return out, nil
}

// buildManifest maps every archive entry to its SHA-1 hex digest.
func buildManifest(files map[string][]byte) ([]byte, error) {
	manifest := make(map[string]string, len(files))
	for name, data := range files {
		sum := sha1.Sum(data)
		manifest[name] = hex.EncodeToString(sum[:])
	}
	out, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", manifestFile, err)
	}
	return out, nil
}

func signManifest(manifest []byte, cert *x509.Certificate, key crypto.PrivateKey, wwdr *x509.Certificate) ([]byte, error) {
	sd, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, fmt.Errorf("initialising signature: %w", err)
	}
	sd.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)
	if err := sd.AddSigner(cert, key, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, fmt.Errorf("adding signer: %w", err)
	}
	sd.AddCertificate(wwdr)
	sd.Detach()

	signature, err := sd.Finish()
	if err != nil {
		return nil, fmt.Errorf("signing manifest: %w", err)
	}
	return signature, nil
}

func zipFiles(files map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %w", name, err)
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

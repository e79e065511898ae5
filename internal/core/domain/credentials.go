package domain

// Credentials is the signing material shared by every pass build.
// Empty byte slices mean the artifact could not be loaded.
type Credentials struct {
	Certificate []byte // signer certificate
	PrivateKey  []byte // signer key, possibly passphrase protected
	WWDR        []byte // Apple WWDR intermediate (trust root)
	Passphrase  string
}

// Complete reports whether all three artifacts are present.
func (c *Credentials) Complete() bool {
	return c != nil && len(c.Certificate) > 0 && len(c.PrivateKey) > 0 && len(c.WWDR) > 0
}

// Missing lists the artifacts that are absent.
func (c *Credentials) Missing() []string {
	if c == nil {
		return []string{"certificate", "private_key", "wwdr"}
	}
	var missing []string
	if len(c.Certificate) == 0 {
		missing = append(missing, "certificate")
	}
	if len(c.PrivateKey) == 0 {
		missing = append(missing, "private_key")
	}
	if len(c.WWDR) == 0 {
		missing = append(missing, "wwdr")
	}
	return missing
}

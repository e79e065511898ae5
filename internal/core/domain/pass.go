package domain

import "fmt"

const (
	// PassContentType is the MIME type of a signed pass archive.
	PassContentType = "application/vnd.apple.pkpass"

	// PassDefinitionFile is the pass description inside a template and an archive.
	PassDefinitionFile = "pass.json"
)

// PassStyle is the top-level pass.json key holding the field dictionaries.
type PassStyle string

const (
	PassStyleBoardingPass PassStyle = "boardingPass"
	PassStyleCoupon       PassStyle = "coupon"
	PassStyleEventTicket  PassStyle = "eventTicket"
	PassStyleGeneric      PassStyle = "generic"
	PassStyleStoreCard    PassStyle = "storeCard"
)

// PassStyles lists every style key a pass.json may carry.
var PassStyles = []PassStyle{
	PassStyleBoardingPass,
	PassStyleCoupon,
	PassStyleEventTicket,
	PassStyleGeneric,
	PassStyleStoreCard,
}

// Barcode formats and encodings.
const (
	BarcodeFormatQR       = "PKBarcodeFormatQR"
	BarcodeEncodingLatin1 = "iso-8859-1"
)

// PassField is one label/value pair shown on the pass.
type PassField struct {
	Key   string      `json:"key"`
	Label string      `json:"label,omitempty"`
	Value interface{} `json:"value"`
}

// Barcode is the scannable code rendered on the pass.
type Barcode struct {
	Message         string `json:"message"`
	Format          string `json:"format"`
	MessageEncoding string `json:"messageEncoding"`
	AltText         string `json:"altText,omitempty"`
}

// PassFields are the per-user values merged into a template.
type PassFields struct {
	SerialNumber    string
	Style           PassStyle
	PrimaryFields   []PassField
	SecondaryFields []PassField
	Barcode         Barcode
}

// PassTemplate is the content of a pass template directory keyed by
// slash-separated relative path. It always holds pass.json.
type PassTemplate struct {
	Files map[string][]byte
}

// PassArtifact is a signed pass archive built for one request.
type PassArtifact struct {
	SerialNumber string
	Data         []byte
}

// Filename is the download name offered to clients.
func (a *PassArtifact) Filename() string {
	return fmt.Sprintf("%s-loyalty.pkpass", a.SerialNumber)
}

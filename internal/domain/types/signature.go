package types

import "encoding/base64"

// PNGDataURLPrefix prefixes every encoded signature image.
const PNGDataURLPrefix = "data:image/png;base64,"

// SignatureArtifact is a snapshot of the signature surface, PNG encoded.
// No stroke history travels with it.
type SignatureArtifact struct {
	PNG []byte
}

// DataURL returns the artifact as an embeddable data URL.
func (a SignatureArtifact) DataURL() string {
	if len(a.PNG) == 0 {
		return ""
	}
	return PNGDataURLPrefix + base64.StdEncoding.EncodeToString(a.PNG)
}

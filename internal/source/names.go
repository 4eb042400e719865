package source

import (
	"golang.org/x/text/unicode/norm"
)

// NormalizeName puts an identifier into NFC so that names read from stub
// files, snapshots and source text compare equal regardless of how the
// producer encoded combining characters.
func NormalizeName(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}

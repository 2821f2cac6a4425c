package temporal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Domain prefix for content-addressed record identity.
// Version suffix enables future algorithm migration.
const domainRecord = "tickspan/record/v1"

// NormalizeName returns the NFC normalization of a record name.
// Names are normalized at every identity and storage boundary so that
// composed and decomposed spellings of the same text hash identically.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// RecordID computes the content-addressed ID of a named interval record.
// The ID is stable across processes given the same inputs.
//
// The digest input is a fixed-order encoding of the record fields with a
// null separator after the domain prefix to prevent boundary ambiguity:
//
//	SHA256(domain || 0x00 || name || 0x00 || resolution |start,end)
//
// The name is NFC normalized before hashing.
func RecordID(name string, res Resolution, startTicks, endTicks int64) string {
	h := sha256.New()
	h.Write([]byte(domainRecord))
	h.Write([]byte{0x00})
	h.Write([]byte(NormalizeName(name)))
	h.Write([]byte{0x00})
	fmt.Fprintf(h, "%s|%d,%d", res, startTicks, endTicks)
	return hex.EncodeToString(h.Sum(nil))
}

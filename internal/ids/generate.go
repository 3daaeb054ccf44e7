// Package ids generates short content-derived identifiers.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strconv"
	"time"

	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

// Generate creates a deterministic, lowercase base32 ID derived from input.
func Generate(input string, length int) string {
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(hash[:])
	if length <= 0 {
		return ""
	}
	if length > len(encoded) {
		length = len(encoded)
	}
	return internalstrings.NormalizeLower(encoded[:length])
}

// GenerateWithTimestamp appends a timestamp to input before hashing.
func GenerateWithTimestamp(input string, timestamp time.Time, length int) string {
	return Generate(input+timestamp.Format(time.RFC3339Nano), length)
}

// GenerateSequenced appends a sequence number so that several IDs derived
// from the same input and timestamp stay distinct. Used when cloning a
// batch of subtasks in one operation.
func GenerateSequenced(input string, timestamp time.Time, seq, length int) string {
	return Generate(input+timestamp.Format(time.RFC3339Nano)+"#"+strconv.Itoa(seq), length)
}

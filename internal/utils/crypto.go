// internal/utils/crypto.go
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// WeakETag returns a weak entity tag over a rendered response body.
func WeakETag(body []byte) string {
	hash := sha256.Sum256(body)
	return `W/"` + hex.EncodeToString(hash[:16]) + `"`
}

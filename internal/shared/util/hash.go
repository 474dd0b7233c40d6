package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// OwnerNamespace returns the object-key directory for a feed owner. Raw user and guest IDs
// never appear in keys, and surrounding whitespace does not move an owner to a new namespace.
func OwnerNamespace(owner string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(owner)))
	return hex.EncodeToString(sum[:])
}

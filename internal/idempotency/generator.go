package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Scope namespaces keys so equal params in different flows never collide
type Scope string

const (
	// ScopeOrderPlacement keys an order by the session it was placed from
	ScopeOrderPlacement Scope = "order_placement"
)

// Generator derives deterministic keys from a scope and its parameters
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateKey returns `<scope>-<digest>` where digest is the first 8 bytes of
// the hash, hex encoded
func (g *Generator) GenerateKey(scope Scope, params map[string]interface{}) string {
	return fmt.Sprintf("%s-%s", scope, g.digest(scope, params, 8))
}

// GenerateID returns a stable resource id of the form `<prefix>_<digest>`.
// Placing the same session twice yields the same id, so the second insert
// collides instead of creating a duplicate.
func (g *Generator) GenerateID(prefix string, scope Scope, params map[string]interface{}) string {
	return fmt.Sprintf("%s_%s", prefix, g.digest(scope, params, 16))
}

// ValidateKey validates if an idempotency key matches expected parameters
func (g *Generator) ValidateKey(scope Scope, params map[string]interface{}, key string) bool {
	return g.GenerateKey(scope, params) == key
}

func (g *Generator) digest(scope Scope, params map[string]interface{}, size int) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(scope))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(":%s=%v", k, params[k]))
	}

	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:size])
}

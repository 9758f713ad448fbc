// File: id.go
// Role: node identity derivation — value-as-ID convenience and UUID synthesis.
package core

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// maxIDAttempts bounds the synthesized-ID retry loop. UUIDv4 collisions are
// effectively impossible, so the budget exists only to make the loop finite.
const maxIDAttempts = 8

// primitiveID renders value as a node ID when it is a textual or numeric
// primitive. This is the documented value-as-ID convenience: inserting the
// same primitive twice without an explicit ID collides on purpose.
func primitiveID(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}

// synthesizeID generates a fresh unique node ID for non-primitive values.
// Returns ErrIDGeneration if every attempt collided with an existing node.
func (g *Graph) synthesizeID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := uuid.NewString()
		if _, taken := g.nodes[id]; !taken {
			return id, nil
		}
	}

	return "", ErrIDGeneration
}

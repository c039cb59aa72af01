package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderIDPattern = regexp.MustCompile(`^SHP-[0-9A-Z]{8}$`)

func TestGenerateOrderIDFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, orderIDPattern, id)
	}
}

func TestGenerateOrderIDCollisionsRare(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		seen[GenerateOrderID()] = struct{}{}
	}
	// Collisions are permitted by the format, but in a sample of 1000 codes
	// sharing at most a few timestamp windows they should be rare.
	assert.GreaterOrEqual(t, len(seen), 990)
}

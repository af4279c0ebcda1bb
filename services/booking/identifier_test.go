package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampIDGeneratorFormat(t *testing.T) {
	gen := TimestampIDGenerator{Now: func() time.Time { return time.UnixMilli(1764547200123) }}
	assert.Equal(t, "BK1764547200123", gen.NewID())
}

// The timestamp scheme is known to collide within one millisecond. This test
// documents the weakness rather than asserting uniqueness.
func TestTimestampIDGeneratorCollidesWithinSameMillisecond(t *testing.T) {
	frozen := time.UnixMilli(1764547200123)
	gen := TimestampIDGenerator{Now: func() time.Time { return frozen }}

	assert.Equal(t, gen.NewID(), gen.NewID())
}

func TestUUIDIDGenerator(t *testing.T) {
	gen := UUIDIDGenerator{}
	pattern := regexp.MustCompile(`^BK-[0-9A-F]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
}

func TestNewIDGenerator(t *testing.T) {
	assert.IsType(t, UUIDIDGenerator{}, NewIDGenerator("UUID"))
	assert.IsType(t, TimestampIDGenerator{}, NewIDGenerator("timestamp"))
	assert.IsType(t, TimestampIDGenerator{}, NewIDGenerator(""))
}

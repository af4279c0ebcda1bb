package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const bookingIDPrefix = "BK"

// IDGenerator produces human-facing booking identifiers. Identifiers are not a
// storage key and uniqueness is only as strong as the chosen scheme.
type IDGenerator interface {
	NewID() string
}

// TimestampIDGenerator yields "BK" + unix milliseconds. Two intakes in the same
// millisecond receive the same identifier.
type TimestampIDGenerator struct {
	Now func() time.Time
}

func (g TimestampIDGenerator) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return bookingIDPrefix + strconv.FormatInt(now().UnixMilli(), 10)
}

// UUIDIDGenerator yields "BK-" + 12 upper-case hex characters of a random UUID.
type UUIDIDGenerator struct{}

func (UUIDIDGenerator) NewID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return bookingIDPrefix + "-" + strings.ToUpper(hex[:12])
}

// NewIDGenerator picks a scheme by name; anything but "uuid" means timestamp.
func NewIDGenerator(scheme string) IDGenerator {
	if strings.EqualFold(scheme, "uuid") {
		return UUIDIDGenerator{}
	}
	return TimestampIDGenerator{Now: time.Now}
}

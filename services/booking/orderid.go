package booking

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	orderIDPrefix   = "SHP"
	base36Alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	orderIDTimeLen  = 4
	orderIDRandLen  = 4
)

// GenerateOrderID produces a short human-readable order code of the form
// SHP-XXXXYYYY: four base-36 characters derived from the current millisecond
// timestamp followed by four random base-36 characters, upper-cased.
//
// The code is a customer-facing reference, not a security token. Collisions
// are possible but statistically rare at the shop's order volume; no
// uniqueness check is made against existing bookings.
func GenerateOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	if len(ts) > orderIDTimeLen {
		ts = ts[len(ts)-orderIDTimeLen:]
	}

	random := make([]byte, orderIDRandLen)
	for i := range random {
		random[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return orderIDPrefix + "-" + strings.ToUpper(ts+string(random))
}

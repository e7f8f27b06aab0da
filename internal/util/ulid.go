package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used to key the artifacts of a
// single pipeline run. A fresh entropy source per call is fine at the
// request rates this service sees; switch to ulid.Monotonic on a shared
// source if strict ordering ever matters.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

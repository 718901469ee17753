package uid

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New generates a record identifier: the current unix-millisecond timestamp in
// base36 followed by a random base36 suffix. Identifiers sort roughly by
// creation time and are unique within a single-writer store; they are not
// guaranteed globally unique under concurrent writers.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatInt(rand.Int63n(1<<40), 36)
	return ts + suffix
}

// Request generates a UUID for request correlation.
func Request() string {
	return uuid.New().String()
}

// IsValidRequest checks if a string is a valid request UUID.
func IsValidRequest(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

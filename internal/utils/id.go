package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random (version 4) UUID string.
func NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	// Fallback to timestamp if the random source is unavailable.
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

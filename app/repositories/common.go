package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("record not found")
)

// newRecordID generates a practically unique identifier: current time in
// milliseconds plus a random suffix. Strict monotonicity is not required,
// only uniqueness across a single user's writes.
func newRecordID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

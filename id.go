package hisab

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID returns a store-generated unique id: a millisecond timestamp plus a
// random suffix. Monotonic enough to avoid collisions within one ledger.
func newID() string {
	return fmt.Sprintf("%d-%.8s", time.Now().UnixMilli(), uuid.NewString())
}

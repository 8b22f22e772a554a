package pkguid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID generates lexicographically sortable string IDs.
type ULID struct {
	mu      sync.Mutex
	entropy io.Reader
}

// NewULID returns a ULID generator with monotonic entropy.
func NewULID() *ULID {
	return &ULID{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Generate returns a new ULID string.
func (u *ULID) Generate() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), u.entropy).String()
}

package event

import "sync"

// defaultDedupWindow is how many recent event IDs a consumer remembers.
const defaultDedupWindow = 1024

// recentIDs remembers the last size IDs. Once full, the oldest ID is evicted
// so memory stays flat for the life of the process.
type recentIDs struct {
	mu    sync.Mutex
	size  int
	ring  []string
	next  int
	index map[string]struct{}
}

func newRecentIDs(size int) *recentIDs {
	if size < 1 {
		size = defaultDedupWindow
	}
	return &recentIDs{
		size:  size,
		ring:  make([]string, 0, size),
		index: make(map[string]struct{}, size),
	}
}

// add records id and reports whether it was new.
func (r *recentIDs) add(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[id]; ok {
		return false
	}

	if len(r.ring) < r.size {
		r.ring = append(r.ring, id)
	} else {
		delete(r.index, r.ring[r.next])
		r.ring[r.next] = id
		r.next = (r.next + 1) % r.size
	}
	r.index[id] = struct{}{}

	return true
}

func (r *recentIDs) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.index)
}

package ring

import (
	"errors"
	"sort"
	"strconv"

	"dynakv/internal/hash"
)

// DefaultVirtualNodes is the vnode multiplier used when none is configured.
const DefaultVirtualNodes = 100

// ErrEmptyRing is returned when an owner is requested from a memberless ring.
var ErrEmptyRing = errors.New("hash ring is empty")

// entry is a virtual node position on the ring.
type entry struct {
	hash   uint64
	nodeID string
}

// Ring places node ids on a 64-bit hash circle, vnodes entries per node.
type Ring struct {
	vnodes  int
	entries []entry // sorted by hash, ascending
}

// New creates an empty ring with the given vnode multiplier.
func New(vnodes int) *Ring {
	if vnodes <= 0 {
		vnodes = DefaultVirtualNodes
	}
	return &Ring{vnodes: vnodes}
}

// AddNode inserts vnodes entries for id. A hash collision with an existing
// entry overwrites it; RemoveNode matches by node id, so nothing is orphaned.
func (r *Ring) AddNode(id string) {
	for i := 0; i < r.vnodes; i++ {
		h := hash.Sum64String(id + "#" + strconv.Itoa(i))
		idx := sort.Search(len(r.entries), func(j int) bool {
			return r.entries[j].hash >= h
		})
		if idx < len(r.entries) && r.entries[idx].hash == h {
			r.entries[idx].nodeID = id
			continue
		}
		r.entries = append(r.entries, entry{})
		copy(r.entries[idx+1:], r.entries[idx:])
		r.entries[idx] = entry{hash: h, nodeID: id}
	}
}

// RemoveNode deletes every entry owned by id. Removing an absent node is a
// no-op.
func (r *Ring) RemoveNode(id string) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.nodeID != id {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// Owner returns the node id at the first entry whose hash is >= hash(key),
// wrapping to the first entry past the largest hash.
func (r *Ring) Owner(key string) (string, error) {
	if len(r.entries) == 0 {
		return "", ErrEmptyRing
	}
	idx := r.search(hash.Sum64String(key))
	return r.entries[idx].nodeID, nil
}

// PreferenceList walks the ring forward from the key's owner, collecting
// distinct node ids until n are found or a full revolution completes. The
// first element is always the owner.
func (r *Ring) PreferenceList(key string, n int) []string {
	if len(r.entries) == 0 || n <= 0 {
		return nil
	}

	start := r.search(hash.Sum64String(key))
	seen := make(map[string]bool, n)
	result := make([]string, 0, n)

	for i := 0; i < len(r.entries) && len(result) < n; i++ {
		id := r.entries[(start+i)%len(r.entries)].nodeID
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

// Size returns the number of ring entries (vnodes, not physical nodes).
func (r *Ring) Size() int {
	return len(r.entries)
}

// search returns the index of the first entry with hash >= h, wrapped.
func (r *Ring) search(h uint64) int {
	idx := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].hash >= h
	})
	if idx == len(r.entries) {
		idx = 0
	}
	return idx
}

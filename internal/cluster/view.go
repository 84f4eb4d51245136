// Package cluster tracks membership: which node ids exist, where they
// listen, and where keys placed on the ring land.
package cluster

import (
	"sort"
	"sync"

	"dynakv/internal/ring"
)

// View holds the node id -> address map and the placement ring under one
// mutex, so both always describe the same membership.
type View struct {
	mu    sync.Mutex
	nodes map[string]string
	ring  *ring.Ring
}

// NewView creates an empty view whose ring uses the given vnode multiplier.
func NewView(vnodes int) *View {
	return &View{
		nodes: make(map[string]string),
		ring:  ring.New(vnodes),
	}
}

// Add registers a node. Re-adding an existing id is a no-op; the first
// address wins. Callers change an address by Remove then Add.
func (v *View) Add(id, address string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.nodes[id]; ok {
		return
	}
	v.nodes[id] = address
	v.ring.AddNode(id)
}

// Remove drops a node from the ring and the address map. Removing an
// absent id is a no-op.
func (v *View) Remove(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.nodes[id]; !ok {
		return
	}
	v.ring.RemoveNode(id)
	delete(v.nodes, id)
}

// AddressOf returns the registered address for id.
func (v *View) AddressOf(id string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	addr, ok := v.nodes[id]
	return addr, ok
}

// NodeIDs returns the member ids, sorted for deterministic output.
func (v *View) NodeIDs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	ids := make([]string, 0, len(v.nodes))
	for id := range v.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Size returns the number of member nodes.
func (v *View) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.nodes)
}

// ReplicaSet returns the preference list for key: up to rf distinct node
// ids, headed by the key's owner.
func (v *View) ReplicaSet(key string, rf int) []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.PreferenceList(key, rf)
}

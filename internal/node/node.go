package node

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"dynakv/internal/cluster"
	kvpb "dynakv/internal/gen/kvpb"
	"dynakv/internal/quorum"
	"dynakv/internal/storage"
	"dynakv/internal/version"
)

// forwardDeadline bounds every outbound replica RPC. An expired call counts
// as a failure; it never aborts the overall request.
const forwardDeadline = 50 * time.Millisecond

// Node is the replication engine of one cluster member. It borrows the
// cluster view and owns the local store, the peer client cache, and the
// metrics counters.
type Node struct {
	id    string
	rf    int
	wq    int
	view  *cluster.View
	store storage.Store

	clients *ClientManager

	// earlyWriteReturn makes Put return as soon as the quorum is met,
	// leaving the remaining fan-out to finish in the background. Off by
	// default so callers can rely on fan-out completion.
	earlyWriteReturn atomic.Bool

	reads           atomic.Uint64
	writes          atomic.Uint64
	readRepairs     atomic.Uint64
	forwardFailures atomic.Uint64
}

// New creates a node with the given identity and replication parameters.
func New(id string, rf, writeQuorum int, view *cluster.View) *Node {
	return &Node{
		id:      id,
		rf:      rf,
		wq:      writeQuorum,
		view:    view,
		store:   storage.NewMemoryStore(),
		clients: NewClientManager(view),
	}
}

// ID returns the node's cluster-unique id.
func (n *Node) ID() string { return n.id }

// ReplicationFactor returns the configured RF.
func (n *Node) ReplicationFactor() int { return n.rf }

// WriteQuorum returns the configured W.
func (n *Node) WriteQuorum() int { return n.wq }

// SetEarlyWriteReturn toggles returning from Put as soon as W acks arrive.
func (n *Node) SetEarlyWriteReturn(enabled bool) {
	n.earlyWriteReturn.Store(enabled)
}

// Close releases the outbound client cache.
func (n *Node) Close() error {
	return n.clients.Close()
}

// Put coordinates a client write: mints the version, fans the write out to
// the key's replica set, and reports success iff at least W replicas
// acknowledged. Partial writes are left in place for later writes or read
// repair to reconcile.
func (n *Node) Put(ctx context.Context, key string, value []byte) bool {
	n.writes.Add(1)

	ver := version.Now(n.id)
	replicas := n.view.ReplicaSet(key, n.rf)
	if len(replicas) == 0 {
		log.WithFields(log.Fields{"node": n.id, "key": key}).Info("put with no replicas available")
		return false
	}

	log.WithFields(log.Fields{
		"node":     n.id,
		"key":      key,
		"version":  ver,
		"replicas": replicas,
	}).Debug("coordinating put")

	acks := quorum.Write(ctx, replicas, n.wq, !n.earlyWriteReturn.Load(),
		func(ctx context.Context, replicaID string) bool {
			if replicaID == n.id {
				return n.store.Apply(key, value, ver)
			}
			return n.forwardPut(ctx, replicaID, key, value, ver)
		})

	return acks >= n.wq
}

// Get coordinates a client read: collects the entry from every replica,
// picks the freshest under the LWW order, synchronously repairs lagging
// replicas, and returns the winner.
func (n *Node) Get(ctx context.Context, key string) (storage.Entry, bool) {
	n.reads.Add(1)

	replicas := n.view.ReplicaSet(key, n.rf)
	if len(replicas) == 0 {
		return storage.Entry{}, false
	}

	results := quorum.Read(ctx, replicas,
		func(ctx context.Context, replicaID string) (storage.Entry, bool) {
			if replicaID == n.id {
				return n.store.Get(key)
			}
			return n.forwardGet(ctx, replicaID, key)
		})

	best, found := pickFreshest(results)
	if !found {
		return storage.Entry{}, false
	}

	n.repairStale(ctx, key, best, results)
	return best, true
}

// LocalGet reads the node's own store, bypassing coordination.
func (n *Node) LocalGet(key string) (storage.Entry, bool) {
	return n.store.Get(key)
}

// ApplyPutLocal installs a replicated entry into the node's own store under
// the LWW rule.
func (n *Node) ApplyPutLocal(key string, value []byte, ver version.Version) bool {
	return n.store.Apply(key, value, ver)
}

// pickFreshest returns the entry with the maximum version among found ones.
func pickFreshest(results []quorum.ReadResult) (storage.Entry, bool) {
	var best storage.Entry
	found := false
	for _, r := range results {
		if !r.Found {
			continue
		}
		if !found || r.Entry.Version.NewerThan(best.Version) {
			best = r.Entry
			found = true
		}
	}
	return best, found
}

// repairStale writes best back to every replica that returned nothing or an
// entry strictly older than best. Repairs run before the read returns; a
// failed repair leaves the divergence for the next read to notice.
func (n *Node) repairStale(ctx context.Context, key string, best storage.Entry, results []quorum.ReadResult) {
	for _, r := range results {
		if r.Found && !best.Version.NewerThan(r.Entry.Version) {
			continue
		}
		n.readRepairs.Add(1)
		log.WithFields(log.Fields{
			"node":    n.id,
			"key":     key,
			"replica": r.ReplicaID,
			"version": best.Version,
		}).Debug("read repair")

		if r.ReplicaID == n.id {
			n.store.Apply(key, best.Value, best.Version)
			continue
		}
		n.forwardPut(ctx, r.ReplicaID, key, best.Value, best.Version)
	}
}

// forwardPut sends an internal PUT carrying an explicit version to one
// replica. Any failure is counted and reported as a missed ack.
func (n *Node) forwardPut(ctx context.Context, replicaID, key string, value []byte, ver version.Version) bool {
	client, err := n.clients.Get(replicaID)
	if err != nil {
		n.forwardFailures.Add(1)
		log.WithFields(log.Fields{"node": n.id, "replica": replicaID}).WithError(err).Info("forward put: no client")
		return false
	}

	callCtx, cancel := context.WithTimeout(ctx, forwardDeadline)
	defer cancel()

	resp, err := client.Put(callCtx, &kvpb.PutRequest{
		Key:        key,
		Value:      value,
		IsInternal: true,
		Version:    versionToProto(ver),
	})
	if err != nil || !resp.GetSuccess() {
		n.forwardFailures.Add(1)
		log.WithFields(log.Fields{"node": n.id, "replica": replicaID, "key": key}).WithError(err).Debug("forward put failed")
		return false
	}
	return true
}

// forwardGet reads one replica's local entry via an internal GET. Failures
// count as a missing entry.
func (n *Node) forwardGet(ctx context.Context, replicaID, key string) (storage.Entry, bool) {
	client, err := n.clients.Get(replicaID)
	if err != nil {
		n.forwardFailures.Add(1)
		log.WithFields(log.Fields{"node": n.id, "replica": replicaID}).WithError(err).Info("forward get: no client")
		return storage.Entry{}, false
	}

	callCtx, cancel := context.WithTimeout(ctx, forwardDeadline)
	defer cancel()

	resp, err := client.Get(callCtx, &kvpb.GetRequest{Key: key, IsInternal: true})
	if err != nil {
		n.forwardFailures.Add(1)
		log.WithFields(log.Fields{"node": n.id, "replica": replicaID, "key": key}).WithError(err).Debug("forward get failed")
		return storage.Entry{}, false
	}
	if !resp.GetFound() {
		return storage.Entry{}, false
	}
	return storage.Entry{
		Value:   resp.GetValue(),
		Version: versionFromProto(resp.GetVersion()),
	}, true
}

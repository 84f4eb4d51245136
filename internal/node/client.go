package node

import (
	"errors"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"dynakv/internal/cluster"
	kvpb "dynakv/internal/gen/kvpb"
)

// ErrUnknownNode is returned when a client is requested for a node id the
// cluster view does not know.
var ErrUnknownNode = errors.New("unknown node id")

// ClientManager caches outbound gRPC clients to peer nodes, keyed by node
// id. Connections are created lazily and never evicted: a failed call is
// reported to the caller while the underlying channel reconnects on its
// own.
type ClientManager struct {
	mu      sync.Mutex
	view    *cluster.View
	conns   map[string]*grpc.ClientConn
	clients map[string]kvpb.KeyValueClient
}

// NewClientManager creates an empty cache resolving addresses through view.
func NewClientManager(view *cluster.View) *ClientManager {
	return &ClientManager{
		view:    view,
		conns:   make(map[string]*grpc.ClientConn),
		clients: make(map[string]kvpb.KeyValueClient),
	}
}

// Get returns the cached client for nodeID, creating one on first use.
// Channel construction happens outside the lock; the second probe under
// the lock discards a racing duplicate.
func (cm *ClientManager) Get(nodeID string) (kvpb.KeyValueClient, error) {
	cm.mu.Lock()
	client, ok := cm.clients[nodeID]
	cm.mu.Unlock()
	if ok {
		return client, nil
	}

	addr, ok := cm.view.AddressOf(nodeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, nodeID)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s (%s): %w", nodeID, addr, err)
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if client, ok := cm.clients[nodeID]; ok {
		// Lost the race; keep the established client.
		_ = conn.Close()
		return client, nil
	}

	client = kvpb.NewKeyValueClient(conn)
	cm.conns[nodeID] = conn
	cm.clients[nodeID] = client
	return client, nil
}

// Close tears down every cached connection.
func (cm *ClientManager) Close() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	var firstErr error
	for id, conn := range cm.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(cm.conns, id)
		delete(cm.clients, id)
	}
	return firstErr
}

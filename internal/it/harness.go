// Package it spins up real in-process gRPC clusters for integration
// tests. All instances share one cluster view, so routing and forwarding
// behave exactly as in production; killing an instance stops its server
// while leaving it in the view, like a crashed peer.
package it

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"google.golang.org/grpc"

	"dynakv/internal/cluster"
	kvpb "dynakv/internal/gen/kvpb"
	"dynakv/internal/node"
)

// Instance is one running node plus its server plumbing.
type Instance struct {
	ID   string
	Addr string
	Node *node.Node

	server *grpc.Server
	alive  bool
}

// Cluster is a set of in-process nodes sharing a view.
type Cluster struct {
	View      *cluster.View
	Instances []*Instance
}

// StartCluster boots count nodes with the given replication parameters.
// Node ids are n1..nN. The cluster is torn down when the test finishes.
func StartCluster(t *testing.T, count, rf, writeQuorum int) *Cluster {
	t.Helper()

	c := &Cluster{View: cluster.NewView(100)}

	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("n%d", i)

		port, err := freeport.GetFreePort()
		if err != nil {
			t.Fatalf("allocate port for %s: %v", id, err)
		}
		addr := fmt.Sprintf("127.0.0.1:%d", port)

		inst := &Instance{
			ID:   id,
			Addr: addr,
			Node: node.New(id, rf, writeQuorum, c.View),
		}
		c.View.Add(id, addr)
		c.serve(t, inst)
		c.Instances = append(c.Instances, inst)
	}

	t.Cleanup(func() {
		for _, inst := range c.Instances {
			if inst.alive {
				inst.server.Stop()
			}
			_ = inst.Node.Close()
		}
	})

	return c
}

// Node returns the engine of instance i (zero-based).
func (c *Cluster) Node(i int) *node.Node {
	return c.Instances[i].Node
}

// Kill crashes instance i: its server stops but it stays in the view, so
// coordinators still route to it and their forwards fail.
func (c *Cluster) Kill(t *testing.T, i int) {
	t.Helper()

	inst := c.Instances[i]
	if !inst.alive {
		return
	}
	inst.server.Stop()
	inst.alive = false
	// Give the port time to actually close before the next RPC.
	time.Sleep(50 * time.Millisecond)
}

// Restart brings a killed instance back on its original address with its
// node state intact, like a process that crashed before flushing anything
// it missed.
func (c *Cluster) Restart(t *testing.T, i int) {
	t.Helper()

	inst := c.Instances[i]
	if inst.alive {
		return
	}
	c.serve(t, inst)
}

func (c *Cluster) serve(t *testing.T, inst *Instance) {
	t.Helper()

	lis, err := net.Listen("tcp", inst.Addr)
	if err != nil {
		t.Fatalf("listen %s: %v", inst.Addr, err)
	}

	inst.server = grpc.NewServer()
	kvpb.RegisterKeyValueServer(inst.server, node.NewServer(inst.Node))

	go func() {
		_ = inst.server.Serve(lis)
	}()
	inst.alive = true
}

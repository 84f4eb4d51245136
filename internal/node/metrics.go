package node

// Metrics is a point-in-time snapshot of a node's counters. Counters are
// incremented with relaxed atomics; a snapshot has no cross-counter
// consistency.
type Metrics struct {
	Reads           uint64
	Writes          uint64
	ReadRepairs     uint64
	ForwardFailures uint64
}

// Metrics returns a snapshot of the node's counters.
func (n *Node) Metrics() Metrics {
	return Metrics{
		Reads:           n.reads.Load(),
		Writes:          n.writes.Load(),
		ReadRepairs:     n.readRepairs.Load(),
		ForwardFailures: n.forwardFailures.Load(),
	}
}

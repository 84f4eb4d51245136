// Package node implements the per-node replication engine: the coordinator
// that fans client writes out to replicas under a write quorum, the read
// path with synchronous read repair, the cache of outbound peer clients,
// and the gRPC adapter that demultiplexes client and peer traffic.
package node

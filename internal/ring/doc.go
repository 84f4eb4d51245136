// Package ring implements a consistent hashing ring with virtual nodes.
// It maps keys to node ids while minimizing key movement when membership
// changes and derives replica preference lists by walking the ring.
//
// The ring is not synchronized; the cluster view serializes all access.
package ring

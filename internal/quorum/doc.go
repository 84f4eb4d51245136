// Package quorum provides the replica fan-out primitives the coordinator
// builds on: parallel dispatch of a sub-operation to every replica with
// ack counting for writes and per-replica result collection for reads.
package quorum

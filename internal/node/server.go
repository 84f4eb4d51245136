package node

import (
	"context"

	log "github.com/sirupsen/logrus"

	kvpb "dynakv/internal/gen/kvpb"
)

// Server adapts the wire protocol onto a Node. Requests flagged internal
// operate strictly on the local store; everything else goes through the
// coordinator. Internal handlers never invoke the coordinator, otherwise
// peers would forward to each other without bound.
type Server struct {
	kvpb.UnimplementedKeyValueServer
	node *Node
}

// NewServer creates the gRPC adapter for n.
func NewServer(n *Node) *Server {
	return &Server{node: n}
}

// Put handles both peer replica writes and client writes.
func (s *Server) Put(ctx context.Context, req *kvpb.PutRequest) (*kvpb.PutResponse, error) {
	if req.GetIsInternal() {
		log.WithFields(log.Fields{"node": s.node.ID(), "key": req.GetKey()}).Debug("internal put")
		if req.GetVersion() == nil {
			// A peer PUT without a version violates the wire contract; fail
			// the request rather than minting one here.
			log.WithFields(log.Fields{"node": s.node.ID(), "key": req.GetKey()}).Warn("internal put missing version")
			return &kvpb.PutResponse{Success: false}, nil
		}
		ok := s.node.ApplyPutLocal(req.GetKey(), req.GetValue(), versionFromProto(req.GetVersion()))
		return &kvpb.PutResponse{Success: ok}, nil
	}

	log.WithFields(log.Fields{"node": s.node.ID(), "key": req.GetKey()}).Debug("client put")
	return &kvpb.PutResponse{Success: s.node.Put(ctx, req.GetKey(), req.GetValue())}, nil
}

// Get handles both peer replica reads and client reads.
func (s *Server) Get(ctx context.Context, req *kvpb.GetRequest) (*kvpb.GetResponse, error) {
	if req.GetIsInternal() {
		log.WithFields(log.Fields{"node": s.node.ID(), "key": req.GetKey()}).Debug("internal get")
		entry, found := s.node.LocalGet(req.GetKey())
		if !found {
			return &kvpb.GetResponse{Found: false}, nil
		}
		return &kvpb.GetResponse{
			Found:   true,
			Value:   entry.Value,
			Version: versionToProto(entry.Version),
		}, nil
	}

	log.WithFields(log.Fields{"node": s.node.ID(), "key": req.GetKey()}).Debug("client get")
	entry, found := s.node.Get(ctx, req.GetKey())
	if !found {
		return &kvpb.GetResponse{Found: false}, nil
	}
	return &kvpb.GetResponse{
		Found:   true,
		Value:   entry.Value,
		Version: versionToProto(entry.Version),
	}, nil
}

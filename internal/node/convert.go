package node

import (
	kvpb "dynakv/internal/gen/kvpb"
	"dynakv/internal/version"
)

func versionToProto(v version.Version) *kvpb.Version {
	return &kvpb.Version{
		TimestampUs: v.TimestampUS,
		WriterId:    v.WriterID,
	}
}

func versionFromProto(pb *kvpb.Version) version.Version {
	if pb == nil {
		return version.Version{}
	}
	return version.Version{
		TimestampUS: pb.GetTimestampUs(),
		WriterID:    pb.GetWriterId(),
	}
}

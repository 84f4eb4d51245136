package node

import (
	"context"
	"testing"

	kvpb "dynakv/internal/gen/kvpb"
)

func TestServer_InternalPutAppliesVersionVerbatim(t *testing.T) {
	n, _ := singleNodeFixture(1, 1)
	srv := NewServer(n)
	ctx := context.Background()

	resp, err := srv.Put(ctx, &kvpb.PutRequest{
		Key:        "k",
		Value:      []byte("v"),
		IsInternal: true,
		Version:    &kvpb.Version{TimestampUs: 12345, WriterId: "peer-7"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.GetSuccess() {
		t.Fatal("internal put reported failure")
	}

	entry, found := n.LocalGet("k")
	if !found {
		t.Fatal("entry missing")
	}
	if entry.Version.TimestampUS != 12345 || entry.Version.WriterID != "peer-7" {
		t.Errorf("stored version %v, want 12345@peer-7", entry.Version)
	}
}

func TestServer_InternalPutWithoutVersionFails(t *testing.T) {
	n, _ := singleNodeFixture(1, 1)
	srv := NewServer(n)

	resp, err := srv.Put(context.Background(), &kvpb.PutRequest{
		Key:        "k",
		Value:      []byte("v"),
		IsInternal: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.GetSuccess() {
		t.Error("peer put without a version must fail")
	}
	if _, found := n.LocalGet("k"); found {
		t.Error("versionless peer put was applied")
	}
}

func TestServer_InternalGetReturnsLocalEntry(t *testing.T) {
	n, _ := singleNodeFixture(1, 1)
	srv := NewServer(n)
	ctx := context.Background()

	if _, err := srv.Put(ctx, &kvpb.PutRequest{
		Key:        "k",
		Value:      []byte("v"),
		IsInternal: true,
		Version:    &kvpb.Version{TimestampUs: 7, WriterId: "w"},
	}); err != nil {
		t.Fatal(err)
	}

	resp, err := srv.Get(ctx, &kvpb.GetRequest{Key: "k", IsInternal: true})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.GetFound() {
		t.Fatal("internal get missed")
	}
	if string(resp.GetValue()) != "v" {
		t.Errorf("value=%q", resp.GetValue())
	}
	if resp.GetVersion().GetTimestampUs() != 7 || resp.GetVersion().GetWriterId() != "w" {
		t.Errorf("version=%v", resp.GetVersion())
	}
}

func TestServer_InternalGetMissing(t *testing.T) {
	n, _ := singleNodeFixture(1, 1)
	srv := NewServer(n)

	resp, err := srv.Get(context.Background(), &kvpb.GetRequest{Key: "missing", IsInternal: true})
	if err != nil {
		t.Fatal(err)
	}
	if resp.GetFound() {
		t.Error("internal get found a missing key")
	}
}

func TestServer_ClientPutCoordinates(t *testing.T) {
	n, _ := singleNodeFixture(1, 1)
	srv := NewServer(n)
	ctx := context.Background()

	putResp, err := srv.Put(ctx, &kvpb.PutRequest{Key: "k", Value: []byte("v")})
	if err != nil {
		t.Fatal(err)
	}
	if !putResp.GetSuccess() {
		t.Fatal("client put failed")
	}

	// The coordinator minted the version with its own id.
	entry, found := n.LocalGet("k")
	if !found {
		t.Fatal("entry missing after coordinated put")
	}
	if entry.Version.WriterID != n.ID() {
		t.Errorf("writer=%q, want %q", entry.Version.WriterID, n.ID())
	}

	getResp, err := srv.Get(ctx, &kvpb.GetRequest{Key: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if !getResp.GetFound() || string(getResp.GetValue()) != "v" {
		t.Errorf("get=%v", getResp)
	}
}

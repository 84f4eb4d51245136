package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		NodeID:            "node-1",
		BindAddr:          "0.0.0.0",
		Port:              50051,
		ReplicationFactor: 3,
		WriteQuorum:       1,
	}
}

func TestValidate_ValidConfigPasses(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_WriteQuorumEqualsReplicationFactor(t *testing.T) {
	cfg := validConfig()
	cfg.WriteQuorum = cfg.ReplicationFactor
	if err := cfg.Validate(); err != nil {
		t.Errorf("W == RF should be valid: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty node id", func(c *Config) { c.NodeID = "" }, "node_id"},
		{"zero port", func(c *Config) { c.Port = 0 }, "port"},
		{"negative port", func(c *Config) { c.Port = -1 }, "port"},
		{"zero replication factor", func(c *Config) { c.ReplicationFactor = 0 }, "replication_factor"},
		{"zero write quorum", func(c *Config) { c.WriteQuorum = 0 }, "write_quorum"},
		{"write quorum above rf", func(c *Config) { c.ReplicationFactor = 2; c.WriteQuorum = 3 }, "write_quorum"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func writeClusterFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ReadsMembersAndParameters(t *testing.T) {
	path := writeClusterFile(t, `
replication_factor: 2
write_quorum: 2
cluster:
  seeds:
    - node_id: n1
      address: 127.0.0.1:50051
    - node_id: n2
      address: 127.0.0.1:50052
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReplicationFactor != 2 || cfg.WriteQuorum != 2 {
		t.Errorf("rf=%d w=%d, want 2/2", cfg.ReplicationFactor, cfg.WriteQuorum)
	}
	if len(cfg.Members) != 2 {
		t.Fatalf("members=%v", cfg.Members)
	}
	if cfg.Members[0].NodeID != "n1" || cfg.Members[0].Address != "127.0.0.1:50051" {
		t.Errorf("members[0]=%+v", cfg.Members[0])
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeClusterFile(t, `
cluster:
  seeds:
    - node_id: n1
      address: 127.0.0.1:50051
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReplicationFactor != 3 {
		t.Errorf("replication_factor default=%d, want 3", cfg.ReplicationFactor)
	}
	if cfg.WriteQuorum != 1 {
		t.Errorf("write_quorum default=%d, want 1", cfg.WriteQuorum)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestBuildView_RegistersMembers(t *testing.T) {
	cfg := validConfig()
	cfg.NodeID = "n1"
	cfg.Members = []Member{
		{NodeID: "n1", Address: "127.0.0.1:50051"},
		{NodeID: "n2", Address: "127.0.0.1:50052"},
	}

	view := cfg.BuildView()
	if view.Size() != 2 {
		t.Fatalf("view size=%d", view.Size())
	}
	addr, ok := view.AddressOf("n1")
	if !ok || addr != "127.0.0.1:50051" {
		t.Errorf("n1 address=%q (configured address must win over self-registration)", addr)
	}
}

func TestBuildView_SelfRegistrationFallback(t *testing.T) {
	cfg := validConfig()
	cfg.NodeID = "n9"
	cfg.Port = 60001
	cfg.Members = []Member{{NodeID: "n1", Address: "127.0.0.1:50051"}}

	view := cfg.BuildView()
	addr, ok := view.AddressOf("n9")
	if !ok {
		t.Fatal("node did not register itself")
	}
	if addr != "localhost:60001" {
		t.Errorf("self address=%q, want localhost:60001", addr)
	}
}

func TestBuildView_SelfRegistrationAdvertiseAddr(t *testing.T) {
	cfg := validConfig()
	cfg.NodeID = "n9"
	cfg.AdvertiseAddr = "10.0.0.9:50051"
	cfg.Members = nil

	view := cfg.BuildView()
	addr, _ := view.AddressOf("n9")
	if addr != "10.0.0.9:50051" {
		t.Errorf("self address=%q, want advertised", addr)
	}
}

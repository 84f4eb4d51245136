// Package config loads and validates node configuration: identity and
// port from flags, replication parameters and cluster members from the
// cluster file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"dynakv/internal/cluster"
	"dynakv/internal/ring"
)

// Member is one configured cluster node.
type Member struct {
	NodeID  string `mapstructure:"node_id"`
	Address string `mapstructure:"address"`
}

// Config is the merged node configuration.
type Config struct {
	NodeID   string
	BindAddr string
	Port     int

	ReplicationFactor int `mapstructure:"replication_factor"`
	WriteQuorum       int `mapstructure:"write_quorum"`

	// AdvertiseAddr is the address peers use to reach this node when it is
	// not listed among the members; empty means localhost:<port>.
	AdvertiseAddr string `mapstructure:"advertise_addr"`

	Members []Member
}

// fileConfig mirrors the cluster file layout.
type fileConfig struct {
	ReplicationFactor int    `mapstructure:"replication_factor"`
	WriteQuorum       int    `mapstructure:"write_quorum"`
	AdvertiseAddr     string `mapstructure:"advertise_addr"`
	Cluster           struct {
		Seeds []Member `mapstructure:"seeds"`
	} `mapstructure:"cluster"`
}

// Load reads the cluster file. Identity fields (NodeID, Port) are set by
// the caller from flags before Validate.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("replication_factor", 3)
	v.SetDefault("write_quorum", 1)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &Config{
		BindAddr:          "0.0.0.0",
		ReplicationFactor: fc.ReplicationFactor,
		WriteQuorum:       fc.WriteQuorum,
		AdvertiseAddr:     fc.AdvertiseAddr,
		Members:           fc.Cluster.Seeds,
	}, nil
}

// Validate reports the first problem as a short diagnostic.
func (c *Config) Validate() error {
	if c.NodeID == "" {
		return errors.New("node_id must not be empty")
	}
	if c.Port <= 0 {
		return errors.New("port must be > 0")
	}
	if c.ReplicationFactor < 1 {
		return errors.New("replication_factor must be >= 1")
	}
	if c.WriteQuorum < 1 {
		return errors.New("write_quorum must be >= 1")
	}
	if c.WriteQuorum > c.ReplicationFactor {
		return errors.New("write_quorum cannot exceed replication_factor")
	}
	return nil
}

// ListenAddr returns the bind address the node serves on.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.Port)
}

// BuildView populates a cluster view from the configured members. If the
// node itself is not among them it registers itself, under AdvertiseAddr
// when configured and localhost:<port> otherwise.
func (c *Config) BuildView() *cluster.View {
	view := cluster.NewView(ring.DefaultVirtualNodes)

	self := false
	for _, m := range c.Members {
		view.Add(m.NodeID, m.Address)
		if m.NodeID == c.NodeID {
			self = true
		}
	}
	if !self {
		addr := c.AdvertiseAddr
		if addr == "" {
			addr = fmt.Sprintf("localhost:%d", c.Port)
		}
		view.Add(c.NodeID, addr)
	}
	return view
}

package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"dynakv/internal/config"
	kvpb "dynakv/internal/gen/kvpb"
	"dynakv/internal/logging"
	"dynakv/internal/node"
)

var (
	flagID        string
	flagPort      int
	flagConfig    string
	flagLogLevel  string
	flagProfiling bool
)

var rootCmd = &cobra.Command{
	Use:           "kvnode --id <node-id> --port <port> --config <cluster.yaml>",
	Short:         "distributed key-value store node",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagID, "id", "", "cluster-unique node id")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "listen port")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to the cluster config file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "none|info|debug (or KV_LOG_LEVEL)")
	rootCmd.Flags().BoolVar(&flagProfiling, "profiling", false, "write a CPU profile on exit")

	_ = rootCmd.MarkFlagRequired("id")
	_ = rootCmd.MarkFlagRequired("port")
	_ = rootCmd.MarkFlagRequired("config")
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init(flagLogLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg.NodeID = flagID
	cfg.Port = flagPort
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if flagProfiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	view := cfg.BuildView()
	log.WithFields(log.Fields{
		"node":    cfg.NodeID,
		"members": view.NodeIDs(),
		"rf":      cfg.ReplicationFactor,
		"w":       cfg.WriteQuorum,
	}).Info("cluster view loaded")

	n := node.New(cfg.NodeID, cfg.ReplicationFactor, cfg.WriteQuorum, view)
	defer n.Close()

	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr(), err)
	}

	server := grpc.NewServer()
	kvpb.RegisterKeyValueServer(server, node.NewServer(n))
	reflection.Register(server)

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"node": cfg.NodeID, "addr": cfg.ListenAddr()}).Info("node listening")
		errCh <- server.Serve(lis)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		log.WithField("signal", sig.String()).Info("shutting down")
		server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("kvnode failed")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	kvpb "dynakv/internal/gen/kvpb"
)

const requestTimeout = 5 * time.Second

var (
	flagAddr string
	client   kvpb.KeyValueClient
	conn     *grpc.ClientConn
)

var errRejected = errors.New("put rejected (acks < W)")

var rootCmd = &cobra.Command{
	Use:           "kvctl",
	Short:         "client for the distributed key-value store",
	SilenceUsage:  true,
	SilenceErrors: false,
	// No subcommand: drop into the interactive REPL.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(client)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "localhost:50051", "node address")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		conn, err = grpc.NewClient(flagAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("connect to %s: %w", flagAddr, err)
		}
		client = kvpb.NewKeyValueClient(conn)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if conn != nil {
			_ = conn.Close()
		}
	}

	rootCmd.AddCommand(putCmd, getCmd, batchPutCmd, batchGetCmd)
}

var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "write a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doPut(client, args[0], []byte(args[1])); err != nil {
			return err
		}
		fmt.Println("PUT ok")
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "read a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, found, err := doGet(client, args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("key not found")
		}
		fmt.Println(string(value))
		return nil
	},
}

var batchPutCmd = &cobra.Command{
	Use:   "batch_put <prefix> <value> <count>",
	Short: "write count keys named <prefix>_<i>",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[2])
		if err != nil || count < 0 {
			return fmt.Errorf("invalid count: %s", args[2])
		}
		for i := 0; i < count; i++ {
			key := fmt.Sprintf("%s_%d", args[0], i)
			if err := doPut(client, key, []byte(args[1])); err != nil {
				return fmt.Errorf("batch_put failed at i=%d: %w", i, err)
			}
		}
		return nil
	},
}

var batchGetCmd = &cobra.Command{
	Use:   "batch_get <key> <count>",
	Short: "read a key count times",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[1])
		if err != nil || count < 0 {
			return fmt.Errorf("invalid count: %s", args[1])
		}
		for i := 0; i < count; i++ {
			if _, _, err := doGet(client, args[0]); err != nil {
				return fmt.Errorf("batch_get failed at i=%d: %w", i, err)
			}
		}
		return nil
	},
}

func doPut(c kvpb.KeyValueClient, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.Put(ctx, &kvpb.PutRequest{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("put rpc: %w", err)
	}
	if !resp.GetSuccess() {
		return errRejected
	}
	return nil
}

func doGet(c kvpb.KeyValueClient, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.Get(ctx, &kvpb.GetRequest{Key: key})
	if err != nil {
		return nil, false, fmt.Errorf("get rpc: %w", err)
	}
	return resp.GetValue(), resp.GetFound(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

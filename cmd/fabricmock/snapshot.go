package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/fabricmock/internal/cli"
	"github.com/aretw0/fabricmock/internal/config"
	"github.com/aretw0/fabricmock/pkg/adapters/redis"
	"github.com/aretw0/fabricmock/pkg/ports"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <scenario>",
	Short: "Store the committed trees of a scenario in Redis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := cli.Open(sessionOptions(cmd, args[0]))
		if err != nil {
			return err
		}

		store, rc, closeStore, err := openStore(cmd, s.Config.Redis)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		n, err := s.SaveSnapshots(ctx, store)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d root(s) to %s\n", n, rc.Addr)
		return nil
	},
}

// openStore builds the Redis snapshot store from config, letting the
// --redis and --ttl flags override it.
func openStore(cmd *cobra.Command, rc config.RedisConfig) (ports.SnapshotStore, config.RedisConfig, func() error, error) {
	if cmd.Flags().Changed("redis") {
		rc.Addr, _ = cmd.Flags().GetString("redis")
	}
	if cmd.Flags().Lookup("ttl") != nil && cmd.Flags().Changed("ttl") {
		rc.TTL, _ = cmd.Flags().GetDuration("ttl")
	}

	backend := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithPrefix(rc.Prefix), redis.WithTTL(rc.TTL))
	store, err := cli.WrapStore(backend, rc)
	if err != nil {
		backend.Close()
		return nil, rc, nil, err
	}
	return store, rc, backend.Close, nil
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("redis", "localhost:6379", "Redis address")
	snapshotCmd.Flags().Duration("ttl", 0, "Expire snapshots after this duration (0 keeps them)")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// ClientConfig is the configuration of the admin command-line client.
type ClientConfig struct {
	Adapter Adapter

	// Args holds the command line left after the global flags: the
	// subcommand and its own flags.
	Args []string
}

// GetClientConfig assembles the client configuration from the .env file,
// the ADAPTER_* environment variables and the global flags in os.Args.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withDotEnv().
		withEnv().
		withClientFlags(args)

	cfg, err := builder.merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Args:    builder.args,
	}

	return clientCfg, clientCfg.validate()
}

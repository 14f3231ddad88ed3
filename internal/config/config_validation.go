// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks settings that are shared by both roles.
func (cfg *StructuredConfig) validate() error {
	if cfg.Client.Mode != "" && cfg.Client.Mode != ModeOnline && cfg.Client.Mode != ModeLocal {
		return ErrInvalidMode
	}

	return nil
}

// validateServer checks that the merged server configuration can start the
// HTTP and gRPC servers.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Mode != ModeOnline && cfg.Mode != ModeLocal {
		return ErrInvalidMode
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Mode == ModeLocal {
		return nil
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 || cfg.Workers.PullLookback < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

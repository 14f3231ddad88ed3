// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// [NewApp] picks the remote store from the configured mode and wires local
// storages, client services and background synchronization into a single
// process lifecycle used by the CLI commands.
package client

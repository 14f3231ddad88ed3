// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-game-keeper/models"
)

// Client defines the lifecycle contract of a composed client application.
type Client interface {
	// Owner returns the id of the logged-in user, or the local owner.
	Owner(ctx context.Context) (string, error)

	// Sync runs one pass over domains, or over every domain when none is given.
	Sync(ctx context.Context, domains ...models.Domain) (models.SyncReport, error)

	// Run blocks until ctx is done, syncing in the background.
	Run(ctx context.Context, onPending func(pending int)) error

	Close() error
}

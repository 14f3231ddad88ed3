// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncResult summarises one pull (initial or incremental) of a single domain.
type SyncResult struct {
	Domain Domain `json:"domain"`

	// Applied is the number of remote entries written to the local store.
	Applied int `json:"applied"`

	// Skipped is the number of entries ignored because a newer local
	// pending write exists.
	Skipped int `json:"skipped"`

	// Cursor is the cursor value after the pull; nil when no cursor exists yet.
	Cursor *time.Time `json:"cursor,omitempty"`
}

// Warning describes a pending record the remote store refused. The record
// stays pending locally.
type Warning struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// FlushResult summarises one syncPending pass of a single domain.
type FlushResult struct {
	Domain   Domain    `json:"domain"`
	Flushed  int       `json:"flushed"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// DomainReport is the outcome of a full sync pass for one domain.
type DomainReport struct {
	Domain  Domain      `json:"domain"`
	Initial *SyncResult `json:"initial,omitempty"`
	Down    SyncResult  `json:"down"`
	Flush   FlushResult `json:"flush"`
	Pending int         `json:"pending"`
	Err     error       `json:"-"`
}

// SyncReport aggregates the per-domain outcome of a sync pass.
type SyncReport struct {
	OwnerID    string         `json:"owner_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Domains    []DomainReport `json:"domains"`
}

// Failed returns the reports whose domain failed during the pass.
func (r SyncReport) Failed() []DomainReport {
	failed := make([]DomainReport, 0)
	for _, d := range r.Domains {
		if d.Err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

// TotalPending sums the pending counters of all domains.
func (r SyncReport) TotalPending() int {
	total := 0
	for _, d := range r.Domains {
		total += d.Pending
	}
	return total
}

// DomainStatus is the local sync state of one domain, shown by the status command.
type DomainStatus struct {
	Domain  Domain     `json:"domain"`
	Pending int        `json:"pending"`
	Cursor  *time.Time `json:"cursor,omitempty"`
}

// AngelaMos | 2026
// kv.go

package store

import (
	"context"
)

// KV is the persistence boundary for the record store. Each collection is a
// single value: a JSON array of its records under a namespaced key. Get
// returns (nil, nil) when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

const (
	CollectionUsers         = "users"
	CollectionJumps         = "jumps"
	CollectionProjects      = "projects"
	CollectionTasks         = "tasks"
	CollectionInvoices      = "invoices"
	CollectionMessages      = "messages"
	CollectionTickets       = "tickets"
	CollectionRatings       = "ratings"
	CollectionLogs          = "logs"
	CollectionRefreshTokens = "refresh_tokens"
)

// DeletePolicy names how a guarded relationship behaves when the referenced
// record is deleted. Each service declares its policies explicitly.
type DeletePolicy string

const (
	// RejectOnReference refuses the deletion while dependents exist.
	RejectOnReference DeletePolicy = "reject_on_reference"
	// CascadeDelete removes the dependents first, then the record.
	CascadeDelete DeletePolicy = "cascade_delete"
)

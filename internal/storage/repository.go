// Package storage defines the data-access contracts the domain layer depends
// on. The postgres subpackage provides the production implementation.
package storage

import (
	"context"

	"github.com/eventdesk/server/internal/domain/events"
	"github.com/eventdesk/server/internal/domain/users"
)

// Repository groups data access by domain.
type Repository interface {
	Events() events.Repository
	Users() users.Repository

	// WithTx runs fn against a repository bound to a single transaction.
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
}

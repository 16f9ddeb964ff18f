package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/franchise-ops/collections/receivables/store/cases"
	"github.com/franchise-ops/collections/receivables/store/invitations"
	"github.com/franchise-ops/collections/receivables/store/titulos"
)

// Store combines all domain-specific queriers
type Store struct {
	Cases       cases.Querier
	Invitations invitations.Querier
	Titulos     titulos.Querier
}

// NewStore creates a new Store backed by the shared pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Cases:       cases.New(db),
		Invitations: invitations.New(db),
		Titulos:     titulos.New(db),
	}
}

package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetPendingVerificationsQueryIsNotConstructed = errors.New(
	"GetPendingVerificationsQuery must be created via NewGetPendingVerificationsQuery constructor",
)

// GetPendingVerificationsQuery retrieves vendor profiles awaiting
// back-office approval. Parameterless; the queue is small by nature.
type GetPendingVerificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingVerificationsQuery creates a verification queue query.
func NewGetPendingVerificationsQuery() GetPendingVerificationsQuery {
	return GetPendingVerificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingVerificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingVerificationsQueryIsNotConstructed)
}

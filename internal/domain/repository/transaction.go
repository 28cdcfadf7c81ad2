package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// Use cases depend on it instead of a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error or a panic rolls
	// back; otherwise the transaction commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewLocationPreferenceRepository() LocationPreferenceRepository
}

// Package store defines the shipment domain model and the data-access
// boundary shared by the in-memory and sqlite implementations.
package store

import (
	"context"
	"errors"
)

var (
	// ErrPackageNotFound is returned by Update for an unknown package id.
	ErrPackageNotFound = errors.New("package not found")
	// ErrCustomerNotFound is returned by Update when the package's
	// customer row is missing. With intact data this cannot happen.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrBrokenReference signals a package whose customer id does not
	// resolve at read time. The whole read fails; this is a consistency
	// violation, not a normal error path.
	ErrBrokenReference = errors.New("package references missing customer")
)

// Store is the persistence boundary. List results are always ordered
// by order date descending. Create mints a brand-new customer for
// every package: deduplication is intentionally not performed.
type Store interface {
	ListWithCustomers(ctx context.Context) ([]PackageWithCustomer, error)
	Create(ctx context.Context, pkg NewPackage, cust NewCustomer) error
	Update(ctx context.Context, packageID string, upd PackageUpdate) error
}

package store

import "time"

// Customer represents a customer row.
type Customer struct {
	ID    string
	Name  string
	Phone string
}

// Package represents a package row. TrackingNumber may be empty,
// meaning no number has been issued yet. OrderDate is set at creation
// and never changes.
type Package struct {
	ID             string
	CustomerID     string
	ProductName    string
	TrackingNumber string
	Status         Status
	OrderDate      time.Time
}

// PackageWithCustomer is the read-only joined projection produced for
// display; it is never persisted independently.
type PackageWithCustomer struct {
	Package
	Customer Customer
}

// NewPackage carries the caller-supplied fields for create. Status and
// order date are assigned by the store.
type NewPackage struct {
	ProductName    string
	TrackingNumber string
}

// NewCustomer carries the caller-supplied customer fields for create.
type NewCustomer struct {
	Name  string
	Phone string
}

// PackageUpdate is the flat edit payload: package and customer fields
// applied together in one call. Order date and customer id are never
// part of an update.
type PackageUpdate struct {
	CustomerName   string
	CustomerPhone  string
	ProductName    string
	TrackingNumber string
	Status         Status
}

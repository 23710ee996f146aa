package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps customers and packages in owned slices. A single
// TUI event loop is the only caller in practice, but the mutex makes
// the store safe if commands ever run concurrently.
type MemoryStore struct {
	mu        sync.Mutex
	customers []Customer
	packages  []Package
	now       func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

// NewSeededMemoryStore returns a store pre-loaded with the demo
// dataset so the app is usable out of the box.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	now := s.now()
	s.customers = []Customer{
		{ID: "cust_1", Name: "ישראל ישראלי", Phone: "050-1234567"},
		{ID: "cust_2", Name: "משה כהן", Phone: "052-7654321"},
	}
	s.packages = []Package{
		{ID: "pkg_1", CustomerID: "cust_1", ProductName: "עגילים מעוצבים", TrackingNumber: "RR123456789IL", Status: StatusShipped, OrderDate: now.AddDate(0, 0, -2)},
		{ID: "pkg_2", CustomerID: "cust_2", ProductName: "שרשרת זהב", TrackingNumber: "", Status: StatusPacking, OrderDate: now.AddDate(0, 0, -1)},
		{ID: "pkg_3", CustomerID: "cust_1", ProductName: "צמיד כסף", TrackingNumber: "RR987654321IL", Status: StatusDelivered, OrderDate: now.AddDate(0, 0, -10)},
	}
	return s
}

// SetClock overrides the time source. Test hook.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) ListWithCustomers(ctx context.Context) ([]PackageWithCustomer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]Customer, len(s.customers))
	for _, c := range s.customers {
		byID[c.ID] = c
	}

	out := make([]PackageWithCustomer, 0, len(s.packages))
	for _, p := range s.packages {
		c, ok := byID[p.CustomerID]
		if !ok {
			return nil, fmt.Errorf("%w: package %s", ErrBrokenReference, p.ID)
		}
		out = append(out, PackageWithCustomer{Package: p, Customer: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, pkg NewPackage, cust NewCustomer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Every order mints a new customer record, even for a repeat
	// buyer. Find-or-create is a product decision that has not been
	// made yet.
	c := Customer{
		ID:    uuid.NewString(),
		Name:  cust.Name,
		Phone: cust.Phone,
	}
	s.customers = append(s.customers, c)

	s.packages = append(s.packages, Package{
		ID:             uuid.NewString(),
		CustomerID:     c.ID,
		ProductName:    pkg.ProductName,
		TrackingNumber: pkg.TrackingNumber,
		Status:         StatusReceived,
		OrderDate:      s.now(),
	})
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, packageID string, upd PackageUpdate) error {
	if !upd.Status.Valid() {
		return fmt.Errorf("update package %s: unknown status %q", packageID, upd.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pi := -1
	for i := range s.packages {
		if s.packages[i].ID == packageID {
			pi = i
			break
		}
	}
	if pi < 0 {
		return fmt.Errorf("update package %s: %w", packageID, ErrPackageNotFound)
	}

	ci := -1
	for i := range s.customers {
		if s.customers[i].ID == s.packages[pi].CustomerID {
			ci = i
			break
		}
	}
	if ci < 0 {
		return fmt.Errorf("update package %s: %w", packageID, ErrCustomerNotFound)
	}

	s.packages[pi].ProductName = upd.ProductName
	s.packages[pi].TrackingNumber = upd.TrackingNumber
	s.packages[pi].Status = upd.Status
	s.customers[ci].Name = upd.CustomerName
	s.customers[ci].Phone = upd.CustomerPhone
	return nil
}

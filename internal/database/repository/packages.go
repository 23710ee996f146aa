// Package repository implements store.Store on top of sqlite.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marina-studio/packtrack/internal/database"
	"github.com/marina-studio/packtrack/internal/store"
)

// PackageRepo handles packages and their customers behind the
// store.Store interface.
type PackageRepo struct {
	db *sql.DB
}

func NewPackageRepo(db *sql.DB) *PackageRepo { return &PackageRepo{db: db} }

// compile-time interface check
var _ store.Store = (*PackageRepo)(nil)

func (r *PackageRepo) ListWithCustomers(ctx context.Context) ([]store.PackageWithCustomer, error) {
	// LEFT JOIN so a dangling customer_id is detected instead of the
	// row silently dropping out.
	rows, err := r.db.QueryContext(ctx, `
	SELECT p.id, p.customer_id, p.product_name, p.tracking_number, p.status, p.order_date,
	       c.id, c.name, c.phone
	FROM packages p
	LEFT JOIN customers c ON c.id = p.customer_id
	ORDER BY p.order_date DESC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.PackageWithCustomer
	for rows.Next() {
		var (
			p         store.Package
			rawStatus string
			custID    sql.NullString
			custName  sql.NullString
			custPhone sql.NullString
			orderDate time.Time
		)
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.ProductName, &p.TrackingNumber, &rawStatus, &orderDate,
			&custID, &custName, &custPhone); err != nil {
			return nil, err
		}
		if !custID.Valid {
			return nil, fmt.Errorf("%w: package %s", store.ErrBrokenReference, p.ID)
		}
		status, err := store.ParseStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", p.ID, err)
		}
		p.Status = status
		p.OrderDate = orderDate
		out = append(out, store.PackageWithCustomer{
			Package:  p,
			Customer: store.Customer{ID: custID.String, Name: custName.String, Phone: custPhone.String},
		})
	}
	return out, rows.Err()
}

func (r *PackageRepo) Create(ctx context.Context, pkg store.NewPackage, cust store.NewCustomer) error {
	custID := uuid.NewString()
	pkgID := uuid.NewString()
	now := database.Now()

	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO customers(id, name, phone) VALUES(?, ?, ?)`,
			custID, cust.Name, cust.Phone); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO packages(id, customer_id, product_name, tracking_number, status, order_date) VALUES(?, ?, ?, ?, ?, ?)`,
			pkgID, custID, pkg.ProductName, pkg.TrackingNumber, string(store.StatusReceived), now)
		return err
	})
}

func (r *PackageRepo) Update(ctx context.Context, packageID string, upd store.PackageUpdate) error {
	if !upd.Status.Valid() {
		return fmt.Errorf("update package %s: unknown status %q", packageID, upd.Status)
	}

	return database.WithTx(r.db, func(tx *sql.Tx) error {
		var customerID string
		err := tx.QueryRowContext(ctx, `SELECT customer_id FROM packages WHERE id = ?`, packageID).Scan(&customerID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("update package %s: %w", packageID, store.ErrPackageNotFound)
		}
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE customers SET name = ?, phone = ? WHERE id = ?`,
			upd.CustomerName, upd.CustomerPhone, customerID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return fmt.Errorf("update package %s: %w", packageID, store.ErrCustomerNotFound)
		}

		// order_date and customer_id stay untouched
		_, err = tx.ExecContext(ctx,
			`UPDATE packages SET product_name = ?, tracking_number = ?, status = ? WHERE id = ?`,
			upd.ProductName, upd.TrackingNumber, string(upd.Status), packageID)
		return err
	})
}

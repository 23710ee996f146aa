package database

import (
	"context"
	"database/sql"

	"github.com/marina-studio/packtrack/internal/store"
)

// SeedDemo loads the demo dataset into an empty database so a fresh
// install matches the in-memory store. Idempotent: it does nothing
// once any package exists.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM packages`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := Now()
	return WithTx(db, func(tx *sql.Tx) error {
		customers := []store.Customer{
			{ID: "cust_1", Name: "ישראל ישראלי", Phone: "050-1234567"},
			{ID: "cust_2", Name: "משה כהן", Phone: "052-7654321"},
		}
		for _, c := range customers {
			if _, err := tx.ExecContext(ctx, `INSERT INTO customers(id, name, phone) VALUES(?, ?, ?)`, c.ID, c.Name, c.Phone); err != nil {
				return err
			}
		}

		packages := []store.Package{
			{ID: "pkg_1", CustomerID: "cust_1", ProductName: "עגילים מעוצבים", TrackingNumber: "RR123456789IL", Status: store.StatusShipped, OrderDate: now.AddDate(0, 0, -2)},
			{ID: "pkg_2", CustomerID: "cust_2", ProductName: "שרשרת זהב", TrackingNumber: "", Status: store.StatusPacking, OrderDate: now.AddDate(0, 0, -1)},
			{ID: "pkg_3", CustomerID: "cust_1", ProductName: "צמיד כסף", TrackingNumber: "RR987654321IL", Status: store.StatusDelivered, OrderDate: now.AddDate(0, 0, -10)},
		}
		for _, p := range packages {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO packages(id, customer_id, product_name, tracking_number, status, order_date) VALUES(?, ?, ?, ?, ?, ?)`,
				p.ID, p.CustomerID, p.ProductName, p.TrackingNumber, string(p.Status), p.OrderDate); err != nil {
				return err
			}
		}
		return nil
	})
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"candela/internal/domain"
	"candela/internal/errors"
)

type MySQLAssignmentsRepository struct {
	db *sql.DB
}

func NewMySQLAssignmentsRepository(db *sql.DB) *MySQLAssignmentsRepository {
	return &MySQLAssignmentsRepository{db: db}
}

// Upsert creates the assignment or refreshes its price override if the
// client already has the product.
func (r *MySQLAssignmentsRepository) Upsert(ctx context.Context, a domain.ProductAssignment) error {
	query := `
		INSERT INTO ProductAssignments (clientId, productId, priceOverride, createdAt)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE priceOverride = VALUES(priceOverride)
	`

	_, err := r.db.ExecContext(ctx, query, a.ClientID, a.ProductID, a.PriceOverride)
	if err != nil {
		return fmt.Errorf("upserting product assignment: %w", err)
	}

	return nil
}

func (r *MySQLAssignmentsRepository) Delete(ctx context.Context, clientID, productID int) error {
	query := `DELETE FROM ProductAssignments WHERE clientId = ? AND productId = ?`

	result, err := r.db.ExecContext(ctx, query, clientID, productID)
	if err != nil {
		return fmt.Errorf("deleting product assignment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("assignment of product %d to client %d not found", productID, clientID))
	}

	return nil
}

func (r *MySQLAssignmentsRepository) FindByClient(ctx context.Context, clientID int) ([]domain.ProductAssignment, error) {
	query := `
		SELECT id, clientId, productId, priceOverride, createdAt
		FROM ProductAssignments
		WHERE clientId = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.ProductAssignment
	for rows.Next() {
		var a domain.ProductAssignment
		if err := rows.Scan(&a.ID, &a.ClientID, &a.ProductID, &a.PriceOverride, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignment rows: %w", err)
	}

	return assignments, nil
}

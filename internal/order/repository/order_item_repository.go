package repository

import (
	"context"
	"database/sql"
	"fmt"

	"candela/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	query := `
		INSERT INTO OrderItems (orderId, location, productId, itemCode, description, unitPrice, quantity, subtotal)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		item.OrderID, item.Location, item.ProductID, item.ItemCode,
		item.Description, item.UnitPrice, item.Quantity, item.Subtotal,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, location, productId, itemCode, description, unitPrice, quantity, subtotal
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.Location, &item.ProductID,
			&item.ItemCode, &item.Description, &item.UnitPrice,
			&item.Quantity, &item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}

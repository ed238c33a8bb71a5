package repository

import (
	"context"
	"database/sql"
	"fmt"

	"candela/internal/domain"
	"candela/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (orderNumber, clientId, userId, location, status,
		                    taxRate, subtotal, taxAmount, total, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.OrderNumber, order.ClientID, order.UserID, order.Location, order.Status,
		order.TaxRate, order.Subtotal, order.TaxAmount, order.Total,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, orderNumber, clientId, userId, location, status,
		       taxRate, subtotal, taxAmount, total, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.OrderNumber, &order.ClientID, &order.UserID,
		&order.Location, &order.Status, &order.TaxRate,
		&order.Subtotal, &order.TaxAmount, &order.Total,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) List(ctx context.Context, clientID *int, status *string) ([]domain.Order, error) {
	query := `
		SELECT id, orderNumber, clientId, userId, location, status,
		       taxRate, subtotal, taxAmount, total, createdAt, updatedAt
		FROM Orders
		WHERE 1=1
	`
	args := []interface{}{}

	if clientID != nil {
		query += " AND clientId = ?"
		args = append(args, *clientID)
	}
	if status != nil {
		query += " AND status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY createdAt DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.ClientID, &order.UserID,
			&order.Location, &order.Status, &order.TaxRate,
			&order.Subtotal, &order.TaxAmount, &order.Total,
			&order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	query := `UPDATE Orders SET status = ?, updatedAt = NOW() WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

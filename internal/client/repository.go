package client

import (
	"context"
	"database/sql"
	"fmt"

	"candela/internal/domain"
	"candela/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, c *domain.Client) (int, error) {
	query := `
		INSERT INTO Clients (name, contactEmail, phone, address, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.ContactEmail, c.Phone, c.Address)
	if err != nil {
		return 0, fmt.Errorf("inserting client: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int) (*domain.Client, error) {
	query := `
		SELECT id, name, contactEmail, phone, address, createdAt, updatedAt
		FROM Clients
		WHERE id = ?
	`

	var c domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ContactEmail, &c.Phone, &c.Address,
		&c.CreatedAt, &c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying client by id: %w", err)
	}

	return &c, nil
}

func (r *MySQLRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT id, name, contactEmail, phone, address, createdAt, updatedAt
		FROM Clients
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		err := rows.Scan(
			&c.ID, &c.Name, &c.ContactEmail, &c.Phone, &c.Address,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"candela/internal/domain"
	"candela/internal/errors"
)

type MySQLProductsRepository struct {
	db *sql.DB
}

func NewMySQLProductsRepository(db *sql.DB) *MySQLProductsRepository {
	return &MySQLProductsRepository{db: db}
}

func (r *MySQLProductsRepository) Insert(ctx context.Context, p *domain.Product) (int, error) {
	specs, err := json.Marshal(p.SpecAttributes)
	if err != nil {
		return 0, fmt.Errorf("encoding spec attributes: %w", err)
	}

	query := `
		INSERT INTO Products (sku, name, description, category, subcategory,
		                      basePrice, unitsPerCase, casePrice, specAttributes,
		                      imageUrl, status, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`

	result, err := r.db.ExecContext(ctx, query,
		p.SKU, p.Name, p.Description, p.Category, p.Subcategory,
		p.BasePrice, p.UnitsPerCase, p.CasePrice, string(specs),
		p.ImageURL, p.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

func (r *MySQLProductsRepository) Update(ctx context.Context, p *domain.Product) error {
	specs, err := json.Marshal(p.SpecAttributes)
	if err != nil {
		return fmt.Errorf("encoding spec attributes: %w", err)
	}

	query := `
		UPDATE Products
		SET name = ?, description = ?, category = ?, subcategory = ?,
		    basePrice = ?, unitsPerCase = ?, casePrice = ?, specAttributes = ?,
		    imageUrl = ?, status = ?, updatedAt = NOW()
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Category, p.Subcategory,
		p.BasePrice, p.UnitsPerCase, p.CasePrice, string(specs),
		p.ImageURL, p.Status, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", p.ID))
	}

	return nil
}

func (r *MySQLProductsRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
		SELECT id, sku, name, description, category, subcategory,
		       basePrice, unitsPerCase, casePrice, specAttributes,
		       imageUrl, status, createdAt, updatedAt
		FROM Products
		WHERE id = ?
	`

	var p domain.Product
	var specs []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.Subcategory,
		&p.BasePrice, &p.UnitsPerCase, &p.CasePrice, &specs,
		&p.ImageURL, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.SpecAttributes); err != nil {
			return nil, fmt.Errorf("decoding spec attributes: %w", err)
		}
	}

	return &p, nil
}

// FindAssignedByClient returns the client's assigned catalog with price
// overrides. Disabled products are excluded; category and search filters are
// optional.
func (r *MySQLProductsRepository) FindAssignedByClient(ctx context.Context, clientID int, category, search string) ([]domain.ClientProduct, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.description, p.category, p.subcategory,
		       p.basePrice, p.unitsPerCase, p.casePrice, p.specAttributes,
		       p.imageUrl, p.status, p.createdAt, p.updatedAt,
		       a.priceOverride
		FROM Products p
		INNER JOIN ProductAssignments a ON a.productId = p.id
		WHERE a.clientId = ? AND p.status = ?
	`
	args := []interface{}{clientID, domain.ProductStatusAvailable}

	if category != "" {
		query += " AND p.category = ?"
		args = append(args, category)
	}
	if search != "" {
		query += " AND (p.name LIKE ? OR p.sku LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY p.category, p.name"

	return r.queryClientProducts(ctx, query, args...)
}

// FindAssignedByIDs returns the subset of the given products assigned to the
// client, with overrides. Unassigned or disabled products are simply absent.
func (r *MySQLProductsRepository) FindAssignedByIDs(ctx context.Context, clientID int, ids []int) ([]domain.ClientProduct, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids)+2)
	args = append(args, clientID, domain.ProductStatusAvailable)
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.sku, p.name, p.description, p.category, p.subcategory,
		       p.basePrice, p.unitsPerCase, p.casePrice, p.specAttributes,
		       p.imageUrl, p.status, p.createdAt, p.updatedAt,
		       a.priceOverride
		FROM Products p
		INNER JOIN ProductAssignments a ON a.productId = p.id
		WHERE a.clientId = ? AND p.status = ? AND p.id IN (%s)
	`, strings.Join(placeholders, ","))

	return r.queryClientProducts(ctx, query, args...)
}

func (r *MySQLProductsRepository) queryClientProducts(ctx context.Context, query string, args ...interface{}) ([]domain.ClientProduct, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying client products: %w", err)
	}
	defer rows.Close()

	var products []domain.ClientProduct
	for rows.Next() {
		var cp domain.ClientProduct
		var specs []byte
		err := rows.Scan(
			&cp.Product.ID, &cp.Product.SKU, &cp.Product.Name, &cp.Product.Description,
			&cp.Product.Category, &cp.Product.Subcategory,
			&cp.Product.BasePrice, &cp.Product.UnitsPerCase, &cp.Product.CasePrice, &specs,
			&cp.Product.ImageURL, &cp.Product.Status, &cp.Product.CreatedAt, &cp.Product.UpdatedAt,
			&cp.PriceOverride,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning client product row: %w", err)
		}

		if len(specs) > 0 {
			if err := json.Unmarshal(specs, &cp.Product.SpecAttributes); err != nil {
				return nil, fmt.Errorf("decoding spec attributes: %w", err)
			}
		}

		products = append(products, cp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client product rows: %w", err)
	}

	return products, nil
}

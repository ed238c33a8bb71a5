package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Tests are skipped when no
// MySQL instance named 'candela_test' is reachable on localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/candela_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "ProductAssignments", "Products", "Clients"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema the repositories expect.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createClientsTable := `
	CREATE TABLE IF NOT EXISTS Clients (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		contactEmail VARCHAR(150) NOT NULL,
		phone VARCHAR(30),
		address VARCHAR(255),
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createProductsTable := `
	CREATE TABLE IF NOT EXISTS Products (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		sku VARCHAR(100) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(100),
		subcategory VARCHAR(100),
		basePrice DECIMAL(10,2) NOT NULL,
		unitsPerCase INT NOT NULL DEFAULT 1,
		casePrice DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		specAttributes JSON,
		imageUrl VARCHAR(512),
		status VARCHAR(20) NOT NULL DEFAULT 'AVAILABLE',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_category (category),
		INDEX idx_status (status)
	)`

	createAssignmentsTable := `
	CREATE TABLE IF NOT EXISTS ProductAssignments (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		clientId INT NOT NULL,
		productId INT NOT NULL,
		priceOverride DECIMAL(10,2),
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_client_product (clientId, productId),
		FOREIGN KEY (clientId) REFERENCES Clients(id) ON DELETE CASCADE,
		FOREIGN KEY (productId) REFERENCES Products(id) ON DELETE CASCADE,
		INDEX idx_client (clientId)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderNumber VARCHAR(64) NOT NULL UNIQUE,
		clientId INT NOT NULL,
		userId VARCHAR(64) NOT NULL,
		location VARCHAR(255),
		status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
		taxRate DECIMAL(5,4) NOT NULL DEFAULT 0.0850,
		subtotal DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		taxAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		total DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_client (clientId),
		INDEX idx_status (status)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		location VARCHAR(255),
		productId INT NOT NULL,
		itemCode VARCHAR(100) NOT NULL,
		description TEXT,
		unitPrice DECIMAL(10,2) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		subtotal DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Clients", createClientsTable},
		{"Products", createProductsTable},
		{"ProductAssignments", createAssignmentsTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Fatalf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

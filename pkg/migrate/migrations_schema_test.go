package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateTablesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no create_tables migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE users",
		"username TEXT NOT NULL UNIQUE",
		"CREATE TABLE price_cuts",
		"price NUMERIC(10, 2) NOT NULL CHECK (price >= 0)",
		"CONSTRAINT idx_price_cuts_product_name UNIQUE (product_id, name)",
		"CREATE TABLE purchases",
		"total_price NUMERIC(10, 2) NOT NULL",
		"DROP TABLE IF EXISTS purchases",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSeedMigrationReferencesCatalogTables(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_seed_products.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no seed migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	for _, sub := range []string{"INSERT INTO products", "INSERT INTO price_cuts", "INSERT INTO assets"} {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

package integration

import (
	"context"
	"testing"
	"time"

	"canasta/internal/database"
	"canasta/internal/model"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the schema
// migrations and opens a connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The production migrations are the schema under test.
	if err := database.Migrate(connStr, zerolog.Nop()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB truncates all tables between test cases.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE shopping_list_items, shopping_lists, products, users CASCADE`)
	if err != nil {
		t.Fatalf("failed to clean up database: %v", err)
	}
}

// SeedUser inserts a user row directly and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, firstName, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:        uuid.New(),
		FirstName: firstName,
		Email:     email,
		Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		IsActive:  true,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, first_name, last_name, email, password, is_active, created_at, updated_at)
		VALUES ($1, $2, '', $3, $4, $5, NOW(), NOW())
	`, user.ID, user.FirstName, user.Email, user.Password, user.IsActive)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user
}

// SeedProduct inserts a product row directly and returns it.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, sku, name string) *model.Product {
	t.Helper()

	product := &model.Product{
		ID:   uuid.New(),
		SKU:  sku,
		Name: name,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO products (id, sku, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, '', NOW(), NOW())
	`, product.ID, product.SKU, product.Name)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	return product
}

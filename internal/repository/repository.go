package repository

import (
	"context"

	"canasta/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as a domain
	// conflict error.
	Create(ctx context.Context, user *model.User) error

	// GetAll retrieves all users, newest first, with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.User, error)

	// GetByID retrieves a single user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *model.User) error

	// Delete removes a user. Deleting a user cascades to their shopping
	// lists and items at the storage layer.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product. A duplicate SKU surfaces as a domain
	// conflict error.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves all products ordered by name, with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product, cascading to any shopping list items that
	// reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpsertBySKU inserts a product or, when the SKU already exists,
	// refreshes its name and description. Used by the catalogue seeder.
	UpsertBySKU(ctx context.Context, product *model.Product) error
}

// ListRepository defines the interface for shopping list data access
// operations.
type ListRepository interface {
	// Create inserts a new shopping list.
	Create(ctx context.Context, list *model.ShoppingList) error

	// GetOrCreateDefault returns the user's default list, creating it within
	// the provided transaction if absent. Safe under concurrent calls for
	// the same user: the partial unique index on (user_id) WHERE is_default
	// guarantees at most one row, and a racing insert converges on it.
	GetOrCreateDefault(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*model.ShoppingList, error)

	// GetByID retrieves a single list by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ShoppingList, error)

	// GetByUser retrieves all lists owned by the user, ordered by target
	// date then most recently updated.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.ShoppingList, error)

	// Update persists changes to an existing list.
	Update(ctx context.Context, list *model.ShoppingList) error

	// Delete removes a list, cascading to its items.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository defines the interface for shopping list item data access
// operations.
type ItemRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Upsert inserts an item within the provided transaction or, when the
	// (list, product) pair already exists, updates the existing row's
	// quantity and unit price. A second row for the same pair is never
	// created.
	Upsert(ctx context.Context, tx pgx.Tx, item *model.ShoppingListItem) error

	// GetByID retrieves a single item by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ShoppingListItem, error)

	// GetDetailByList retrieves a list's items joined with product details,
	// most recently updated first.
	GetDetailByList(ctx context.Context, listID uuid.UUID) ([]model.ItemDetail, error)

	// GetDetailByUser retrieves all items across the user's lists joined
	// with product details, most recently updated first.
	GetDetailByUser(ctx context.Context, userID uuid.UUID) ([]model.ItemDetail, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *model.ShoppingListItem) error

	// Delete removes an item.
	Delete(ctx context.Context, id uuid.UUID) error
}

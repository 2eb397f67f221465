package service

import (
	"context"

	"canasta/internal/model"

	"github.com/google/uuid"
)

// UserService defines operations for account management.
type UserService interface {
	// Register creates a new account, hashing the supplied credential.
	Register(ctx context.Context, req *model.UserRequest) (*model.User, error)

	// GetAll retrieves all users with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.User, error)

	// GetByID retrieves a single user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Update applies changes to an existing user. The password is re-hashed
	// only when a new one is supplied.
	Update(ctx context.Context, id uuid.UUID, req *model.UserRequest) (*model.User, error)

	// Delete removes a user and, through storage cascades, their lists and
	// items.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// Create adds a product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Update applies changes to an existing product.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product and, through storage cascades, every list
	// item referencing it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListService defines the caller-scoped operations on shopping lists and
// their items. Every operation takes the resolved caller and enforces that
// only the owner can see or mutate a list; derived aggregates are attached
// to list reads and recomputed from the current items on every call.
type ListService interface {
	// GetLists retrieves the caller's lists with items and aggregates.
	GetLists(ctx context.Context, caller *model.User) ([]model.ShoppingListResponse, error)

	// CreateList creates a titled list for the caller.
	CreateList(ctx context.Context, caller *model.User, req *model.ShoppingListRequest) (*model.ShoppingListResponse, error)

	// GetList retrieves one of the caller's lists with items and aggregates.
	GetList(ctx context.Context, caller *model.User, id uuid.UUID) (*model.ShoppingListResponse, error)

	// UpdateList applies changes to one of the caller's lists.
	UpdateList(ctx context.Context, caller *model.User, id uuid.UUID, req *model.ShoppingListRequest) (*model.ShoppingListResponse, error)

	// DeleteList removes one of the caller's lists and its items.
	DeleteList(ctx context.Context, caller *model.User, id uuid.UUID) error

	// GetItems retrieves all of the caller's items with product details,
	// most recently updated first.
	GetItems(ctx context.Context, caller *model.User) ([]model.ItemResponse, error)

	// GetItem retrieves one of the caller's items with product details.
	GetItem(ctx context.Context, caller *model.User, id uuid.UUID) (*model.ItemResponse, error)

	// AddItem puts a product on one of the caller's lists, provisioning the
	// default list if none is named. Re-adding a product updates the
	// existing row instead of duplicating it.
	AddItem(ctx context.Context, caller *model.User, req *model.ItemCreateRequest) (*model.ItemResponse, error)

	// UpdateItem applies changes to one of the caller's items.
	UpdateItem(ctx context.Context, caller *model.User, id uuid.UUID, req *model.ItemUpdateRequest) (*model.ItemResponse, error)

	// DeleteItem removes one of the caller's items.
	DeleteItem(ctx context.Context, caller *model.User, id uuid.UUID) error
}

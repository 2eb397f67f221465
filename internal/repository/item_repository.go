package repository

import (
	"context"
	"fmt"

	"canasta/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// itemRepository implements the ItemRepository interface using PostgreSQL.
type itemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewItemRepository creates a new PostgreSQL-backed shopping list item
// repository.
func NewItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *itemRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Upsert inserts an item within the provided transaction, or updates the
// quantity and unit price of the row already holding the same
// (list, product) pair. The unique constraint is authoritative: two
// concurrent adds for a never-before-seen pair converge on one row. The
// purchased flag of an existing row is left untouched.
func (r *itemRepository) Upsert(ctx context.Context, tx pgx.Tx, item *model.ShoppingListItem) error {
	query := `
		INSERT INTO shopping_list_items
			(id, shopping_list_id, product_id, quantity, unit_price, is_purchased, added_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT ON CONSTRAINT shopping_list_items_list_product_key
		DO UPDATE SET quantity = EXCLUDED.quantity, unit_price = EXCLUDED.unit_price, updated_at = NOW()
		RETURNING id, quantity, unit_price, is_purchased, added_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		item.ID, item.ShoppingListID, item.ProductID,
		item.Quantity, item.UnitPrice, item.IsPurchased).
		Scan(&item.ID, &item.Quantity, &item.UnitPrice, &item.IsPurchased, &item.AddedAt, &item.UpdatedAt)
	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return domainErr
		}
		r.logger.Error().Err(err).
			Str("list_id", item.ShoppingListID.String()).
			Str("product_id", item.ProductID.String()).
			Msg("failed to upsert shopping list item")
		return fmt.Errorf("failed to upsert shopping list item: %w", err)
	}

	r.logger.Debug().
		Str("item_id", item.ID.String()).
		Str("list_id", item.ShoppingListID.String()).
		Msg("shopping list item upserted")

	return nil
}

// GetByID retrieves a single item by ID.
func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ShoppingListItem, error) {
	query := `
		SELECT id, shopping_list_id, product_id, quantity, unit_price, is_purchased, added_at, updated_at
		FROM shopping_list_items
		WHERE id = $1
	`

	var item model.ShoppingListItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.ShoppingListID, &item.ProductID,
		&item.Quantity, &item.UnitPrice, &item.IsPurchased,
		&item.AddedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("item_id", id.String()).Msg("shopping list item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to query shopping list item")
		return nil, fmt.Errorf("failed to query shopping list item: %w", err)
	}

	return &item, nil
}

const itemDetailColumns = `
	i.id, i.shopping_list_id, i.product_id, i.quantity, i.unit_price, i.is_purchased, i.added_at, i.updated_at,
	p.id, p.sku, p.name, p.description, p.created_at, p.updated_at
`

// GetDetailByList retrieves a list's items joined with product details,
// most recently updated first.
func (r *itemRepository) GetDetailByList(ctx context.Context, listID uuid.UUID) ([]model.ItemDetail, error) {
	query := `
		SELECT ` + itemDetailColumns + `
		FROM shopping_list_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.shopping_list_id = $1
		ORDER BY i.updated_at DESC
	`

	return r.queryDetails(ctx, query, listID)
}

// GetDetailByUser retrieves all items across the user's lists joined with
// product details, most recently updated first.
func (r *itemRepository) GetDetailByUser(ctx context.Context, userID uuid.UUID) ([]model.ItemDetail, error) {
	query := `
		SELECT ` + itemDetailColumns + `
		FROM shopping_list_items i
		JOIN products p ON p.id = i.product_id
		JOIN shopping_lists l ON l.id = i.shopping_list_id
		WHERE l.user_id = $1
		ORDER BY i.updated_at DESC
	`

	return r.queryDetails(ctx, query, userID)
}

// queryDetails runs an item-with-product query and scans the joined rows.
func (r *itemRepository) queryDetails(ctx context.Context, query string, arg any) ([]model.ItemDetail, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query shopping list items")
		return nil, fmt.Errorf("failed to query shopping list items: %w", err)
	}
	defer rows.Close()

	var details []model.ItemDetail
	for rows.Next() {
		var d model.ItemDetail
		err := rows.Scan(
			&d.Item.ID, &d.Item.ShoppingListID, &d.Item.ProductID,
			&d.Item.Quantity, &d.Item.UnitPrice, &d.Item.IsPurchased,
			&d.Item.AddedAt, &d.Item.UpdatedAt,
			&d.Product.ID, &d.Product.SKU, &d.Product.Name, &d.Product.Description,
			&d.Product.CreatedAt, &d.Product.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan shopping list item row")
			return nil, fmt.Errorf("failed to scan shopping list item: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating shopping list item rows")
		return nil, fmt.Errorf("error iterating shopping list items: %w", err)
	}

	return details, nil
}

// Update persists changes to an existing item.
func (r *itemRepository) Update(ctx context.Context, item *model.ShoppingListItem) error {
	query := `
		UPDATE shopping_list_items
		SET quantity = $2, unit_price = $3, is_purchased = $4, updated_at = NOW()
		WHERE id = $1
	`

	ct, err := r.pool.Exec(ctx, query, item.ID, item.Quantity, item.UnitPrice, item.IsPurchased)
	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return domainErr
		}
		r.logger.Error().Err(err).Str("item_id", item.ID.String()).Msg("failed to update shopping list item")
		return fmt.Errorf("failed to update shopping list item: %w", err)
	}

	if ct.RowsAffected() == 0 {
		r.logger.Debug().Str("item_id", item.ID.String()).Msg("shopping list item not found on update")
		return model.ErrItemNotFound
	}

	return nil
}

// Delete removes an item.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM shopping_list_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to delete shopping list item")
		return fmt.Errorf("failed to delete shopping list item: %w", err)
	}

	if ct.RowsAffected() == 0 {
		r.logger.Debug().Str("item_id", id.String()).Msg("shopping list item not found on delete")
		return model.ErrItemNotFound
	}

	r.logger.Debug().Str("item_id", id.String()).Msg("shopping list item deleted")

	return nil
}

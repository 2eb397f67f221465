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

// listRepository implements the ListRepository interface using PostgreSQL.
type listRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewListRepository creates a new PostgreSQL-backed shopping list repository.
func NewListRepository(pool *pgxpool.Pool, logger zerolog.Logger) ListRepository {
	return &listRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "list").Logger(),
	}
}

// Create inserts a new shopping list.
func (r *listRepository) Create(ctx context.Context, list *model.ShoppingList) error {
	query := `
		INSERT INTO shopping_lists (id, user_id, title, is_default, target_date, budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		list.ID, list.UserID, list.Title, list.IsDefault,
		list.TargetDate, list.Budget, list.CreatedAt, list.UpdatedAt)
	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return domainErr
		}
		r.logger.Error().Err(err).Str("list_id", list.ID.String()).Msg("failed to create shopping list")
		return fmt.Errorf("failed to create shopping list: %w", err)
	}

	r.logger.Debug().
		Str("list_id", list.ID.String()).
		Str("user_id", list.UserID.String()).
		Msg("shopping list created successfully")

	return nil
}

// GetOrCreateDefault returns the user's default list, creating it within the
// provided transaction if absent. The insert races through the partial
// unique index: when a concurrent request created the row first, the
// conflict clause touches the existing row so RETURNING always yields the
// single surviving list.
func (r *listRepository) GetOrCreateDefault(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*model.ShoppingList, error) {
	query := `
		INSERT INTO shopping_lists (id, user_id, title, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (user_id) WHERE is_default
		DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, title, is_default, target_date, budget, created_at, updated_at
	`

	var list model.ShoppingList
	err := tx.QueryRow(ctx, query, uuid.New(), userID, model.DefaultListTitle).Scan(
		&list.ID, &list.UserID, &list.Title, &list.IsDefault,
		&list.TargetDate, &list.Budget, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get or create default list")
		return nil, fmt.Errorf("failed to get or create default list: %w", err)
	}

	return &list, nil
}

// GetByID retrieves a single list by ID.
func (r *listRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ShoppingList, error) {
	query := `
		SELECT id, user_id, title, is_default, target_date, budget, created_at, updated_at
		FROM shopping_lists
		WHERE id = $1
	`

	var list model.ShoppingList
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&list.ID, &list.UserID, &list.Title, &list.IsDefault,
		&list.TargetDate, &list.Budget, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("list_id", id.String()).Msg("shopping list not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("list_id", id.String()).Msg("failed to query shopping list")
		return nil, fmt.Errorf("failed to query shopping list: %w", err)
	}

	return &list, nil
}

// GetByUser retrieves all lists owned by the user.
func (r *listRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.ShoppingList, error) {
	query := `
		SELECT id, user_id, title, is_default, target_date, budget, created_at, updated_at
		FROM shopping_lists
		WHERE user_id = $1
		ORDER BY target_date DESC NULLS LAST, updated_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query shopping lists")
		return nil, fmt.Errorf("failed to query shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []model.ShoppingList
	for rows.Next() {
		var list model.ShoppingList
		err := rows.Scan(
			&list.ID, &list.UserID, &list.Title, &list.IsDefault,
			&list.TargetDate, &list.Budget, &list.CreatedAt, &list.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan shopping list row")
			return nil, fmt.Errorf("failed to scan shopping list: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating shopping list rows")
		return nil, fmt.Errorf("error iterating shopping lists: %w", err)
	}

	return lists, nil
}

// Update persists changes to an existing list.
func (r *listRepository) Update(ctx context.Context, list *model.ShoppingList) error {
	query := `
		UPDATE shopping_lists
		SET title = $2, target_date = $3, budget = $4, updated_at = NOW()
		WHERE id = $1
	`

	ct, err := r.pool.Exec(ctx, query, list.ID, list.Title, list.TargetDate, list.Budget)
	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return domainErr
		}
		r.logger.Error().Err(err).Str("list_id", list.ID.String()).Msg("failed to update shopping list")
		return fmt.Errorf("failed to update shopping list: %w", err)
	}

	if ct.RowsAffected() == 0 {
		r.logger.Debug().Str("list_id", list.ID.String()).Msg("shopping list not found on update")
		return model.ErrListNotFound
	}

	return nil
}

// Delete removes a list, cascading to its items.
func (r *listRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("list_id", id.String()).Msg("failed to delete shopping list")
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}

	if ct.RowsAffected() == 0 {
		r.logger.Debug().Str("list_id", id.String()).Msg("shopping list not found on delete")
		return model.ErrListNotFound
	}

	r.logger.Debug().Str("list_id", id.String()).Msg("shopping list deleted")

	return nil
}

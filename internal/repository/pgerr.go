package repository

import (
	"errors"

	"canasta/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes relevant to constraint translation.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateConstraint maps storage-level constraint violations onto domain
// errors so they never leak to callers as raw pgconn errors. Returns nil for
// errors that are not constraint violations; the caller wraps those itself.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "users_email_key":
			return model.ErrDuplicateEmail
		case "products_sku_key":
			return model.ErrDuplicateSKU
		case "shopping_list_items_list_product_key":
			return model.ErrDuplicateListItem
		case "shopping_lists_default_per_user_key":
			return model.ErrDuplicateDefaultList
		}
		return model.NewDomainError(model.ErrCodeConflict, "Resource already exists")

	case pgForeignKeyViolation:
		// Inserting an item against a missing product or list.
		switch pgErr.ConstraintName {
		case "shopping_list_items_product_id_fkey":
			return model.ErrProductNotFound
		case "shopping_list_items_shopping_list_id_fkey":
			return model.ErrListNotFound
		}
		return model.NewDomainError(model.ErrCodeNotFound, "Referenced resource not found")

	case pgCheckViolation:
		switch pgErr.ConstraintName {
		case "shopping_list_items_quantity_check":
			return model.ErrInvalidQuantity
		case "shopping_list_items_unit_price_check":
			return model.ErrInvalidPrice
		case "shopping_lists_budget_check":
			return model.ErrInvalidBudget
		}
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Value rejected by a storage constraint")
	}

	return nil
}

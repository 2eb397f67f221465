package repository

import (
	"errors"
	"fmt"
	"testing"

	"canasta/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateConstraint(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "Duplicate email",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			expected: model.ErrDuplicateEmail,
		},
		{
			name:     "Duplicate SKU",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"},
			expected: model.ErrDuplicateSKU,
		},
		{
			name:     "Duplicate list item",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "shopping_list_items_list_product_key"},
			expected: model.ErrDuplicateListItem,
		},
		{
			name:     "Duplicate default list",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "shopping_lists_default_per_user_key"},
			expected: model.ErrDuplicateDefaultList,
		},
		{
			name:     "Item against missing product",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "shopping_list_items_product_id_fkey"},
			expected: model.ErrProductNotFound,
		},
		{
			name:     "Item against missing list",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "shopping_list_items_shopping_list_id_fkey"},
			expected: model.ErrListNotFound,
		},
		{
			name:     "Quantity check",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "shopping_list_items_quantity_check"},
			expected: model.ErrInvalidQuantity,
		},
		{
			name:     "Unit price check",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "shopping_list_items_unit_price_check"},
			expected: model.ErrInvalidPrice,
		},
		{
			name:     "Budget check",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "shopping_lists_budget_check"},
			expected: model.ErrInvalidBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translateConstraint(tt.err))
		})
	}
}

func TestTranslateConstraint_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("exec failed: %w",
		&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	assert.Equal(t, model.ErrDuplicateEmail, translateConstraint(wrapped))
}

func TestTranslateConstraint_UnknownConstraintFallsBack(t *testing.T) {
	err := translateConstraint(&pgconn.PgError{Code: "23505", ConstraintName: "something_else"})

	var domainErr *model.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeConflict, domainErr.Code)
}

func TestTranslateConstraint_PassesThroughOtherErrors(t *testing.T) {
	assert.Nil(t, translateConstraint(errors.New("connection refused")))
	assert.Nil(t, translateConstraint(&pgconn.PgError{Code: "57014"}))
	assert.Nil(t, translateConstraint(nil))
}

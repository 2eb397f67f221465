package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingList is a titled, optionally budgeted collection of items owned by
// exactly one user. Each user has at most one default list, which is where
// items land when no list is named explicitly.
type ShoppingList struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	UserID     uuid.UUID        `json:"userId" db:"user_id"`
	Title      string           `json:"title" db:"title"`
	IsDefault  bool             `json:"isDefault" db:"is_default"`
	TargetDate *time.Time       `json:"targetDate,omitempty" db:"target_date"`
	Budget     *decimal.Decimal `json:"budget,omitempty" db:"budget"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`
}

// DefaultListTitle is given to lazily provisioned lists.
const DefaultListTitle = "Lista de compras"

// ShoppingListItem is a (list, product) pairing with quantity, price and
// purchase status. A product appears at most once per list.
type ShoppingListItem struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	ShoppingListID uuid.UUID       `json:"shoppingListId" db:"shopping_list_id"`
	ProductID      uuid.UUID       `json:"productId" db:"product_id"`
	Quantity       int             `json:"quantity" db:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice" db:"unit_price"`
	IsPurchased    bool            `json:"isPurchased" db:"is_purchased"`
	AddedAt        time.Time       `json:"addedAt" db:"added_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// LineTotal returns quantity x unit price for this item.
func (i ShoppingListItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemDetail pairs an item with its product record, as returned by joined
// repository reads.
type ItemDetail struct {
	Item    ShoppingListItem
	Product Product
}

// ShoppingListRequest represents the payload for creating or updating a
// shopping list.
type ShoppingListRequest struct {
	Title      string           `json:"title"`
	TargetDate *time.Time       `json:"targetDate,omitempty"`
	Budget     *decimal.Decimal `json:"budget,omitempty"`
}

// ItemCreateRequest represents the payload for adding a product to a list.
// ShoppingListID may be omitted, in which case the caller's default list is
// used, creating it if necessary.
type ItemCreateRequest struct {
	ShoppingListID *uuid.UUID      `json:"shoppingListId,omitempty"`
	ProductID      uuid.UUID       `json:"productId"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
}

// ItemUpdateRequest carries partial changes to an existing item. Nil fields
// are left untouched.
type ItemUpdateRequest struct {
	Quantity    *int             `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	IsPurchased *bool            `json:"isPurchased,omitempty"`
}

// ItemResponse is an item joined with its product details.
type ItemResponse struct {
	ShoppingListItem
	Product   Product         `json:"product"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// NewItemResponse builds the response shape for a joined item row.
func NewItemResponse(d ItemDetail) ItemResponse {
	return ItemResponse{
		ShoppingListItem: d.Item,
		Product:          d.Product,
		LineTotal:        d.Item.LineTotal(),
	}
}

// ShoppingListResponse is a list together with its items and the aggregates
// derived from them.
type ShoppingListResponse struct {
	ShoppingList
	Items   []ItemResponse `json:"items"`
	Summary ListSummary    `json:"summary"`
}

package model

import "github.com/shopspring/decimal"

// ListSummary holds the aggregates derived from a list's current items.
// Aggregates are recomputed on every read and never persisted, so they can
// never drift from the underlying item rows.
type ListSummary struct {
	TotalItems      int              `json:"totalItems"`
	PurchasedItems  int              `json:"purchasedItems"`
	PendingItems    int              `json:"pendingItems"`
	TotalCost       decimal.Decimal  `json:"totalCost"`
	TotalSpent      decimal.Decimal  `json:"totalSpent"`
	RemainingBudget *decimal.Decimal `json:"remainingBudget"`
}

// Summarize derives a ListSummary from a slice of items and an optional
// budget. It is pure: it reads nothing but its arguments and mutates nothing.
// RemainingBudget is nil when no budget is configured; a budget of zero is a
// real budget and yields a (typically negative) remainder.
func Summarize(items []ShoppingListItem, budget *decimal.Decimal) ListSummary {
	summary := ListSummary{
		TotalCost:  decimal.Zero,
		TotalSpent: decimal.Zero,
	}

	for _, item := range items {
		summary.TotalItems++
		lineTotal := item.LineTotal()
		summary.TotalCost = summary.TotalCost.Add(lineTotal)
		if item.IsPurchased {
			summary.PurchasedItems++
			summary.TotalSpent = summary.TotalSpent.Add(lineTotal)
		}
	}
	summary.PendingItems = summary.TotalItems - summary.PurchasedItems

	// Money is carried with two fractional digits end to end.
	summary.TotalCost = summary.TotalCost.Round(2)
	summary.TotalSpent = summary.TotalSpent.Round(2)

	if budget != nil {
		remaining := budget.Sub(summary.TotalCost).Round(2)
		summary.RemainingBudget = &remaining
	}

	return summary
}

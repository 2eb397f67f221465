package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"canasta/internal/model"
	"canasta/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// listService implements ListService.
type listService struct {
	listRepo    repository.ListRepository
	itemRepo    repository.ItemRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewListService creates a new shopping list service.
func NewListService(
	listRepo repository.ListRepository,
	itemRepo repository.ItemRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) ListService {
	return &listService{
		listRepo:    listRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "list").Logger(),
	}
}

// GetLists retrieves the caller's lists with items and aggregates.
func (s *listService) GetLists(ctx context.Context, caller *model.User) ([]model.ShoppingListResponse, error) {
	lists, err := s.listRepo.GetByUser(ctx, caller.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", caller.ID.String()).Msg("failed to get shopping lists")
		return nil, fmt.Errorf("failed to get shopping lists: %w", err)
	}

	responses := make([]model.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		resp, err := s.buildListResponse(ctx, &list)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// CreateList creates a titled list for the caller.
func (s *listService) CreateList(ctx context.Context, caller *model.User, req *model.ShoppingListRequest) (*model.ShoppingListResponse, error) {
	if err := validateListRequest(req); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = model.DefaultListTitle
	}

	now := time.Now()
	list := &model.ShoppingList{
		ID:         uuid.New(),
		UserID:     caller.ID,
		Title:      title,
		TargetDate: req.TargetDate,
		Budget:     req.Budget,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("list_id", list.ID.String()).
		Str("user_id", caller.ID.String()).
		Msg("shopping list created")

	return &model.ShoppingListResponse{
		ShoppingList: *list,
		Items:        []model.ItemResponse{},
		Summary:      model.Summarize(nil, list.Budget),
	}, nil
}

// GetList retrieves one of the caller's lists with items and aggregates.
func (s *listService) GetList(ctx context.Context, caller *model.User, id uuid.UUID) (*model.ShoppingListResponse, error) {
	list, err := s.ownedList(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	return s.buildListResponse(ctx, list)
}

// UpdateList applies changes to one of the caller's lists.
func (s *listService) UpdateList(ctx context.Context, caller *model.User, id uuid.UUID, req *model.ShoppingListRequest) (*model.ShoppingListResponse, error) {
	if err := validateListRequest(req); err != nil {
		return nil, err
	}

	list, err := s.ownedList(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		list.Title = title
	}
	list.TargetDate = req.TargetDate
	list.Budget = req.Budget

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info().Str("list_id", list.ID.String()).Msg("shopping list updated")

	return s.buildListResponse(ctx, list)
}

// DeleteList removes one of the caller's lists and its items.
func (s *listService) DeleteList(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if _, err := s.ownedList(ctx, caller, id); err != nil {
		return err
	}

	if err := s.listRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("list_id", id.String()).Msg("shopping list deleted")

	return nil
}

// GetItems retrieves all of the caller's items with product details.
func (s *listService) GetItems(ctx context.Context, caller *model.User) ([]model.ItemResponse, error) {
	details, err := s.itemRepo.GetDetailByUser(ctx, caller.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", caller.ID.String()).Msg("failed to get shopping list items")
		return nil, fmt.Errorf("failed to get shopping list items: %w", err)
	}

	responses := make([]model.ItemResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, model.NewItemResponse(d))
	}

	return responses, nil
}

// AddItem puts a product on one of the caller's lists. When no list is
// named, the caller's default list is provisioned lazily inside the same
// transaction as the item write, so a first add never fails for lack of a
// list. Adding a product already on the list updates the existing row.
func (s *listService) AddItem(ctx context.Context, caller *model.User, req *model.ItemCreateRequest) (*model.ItemResponse, error) {
	if err := validateItemCreateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID.String()).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	// A named list must already belong to the caller.
	if req.ShoppingListID != nil {
		if _, err := s.ownedList(ctx, caller, *req.ShoppingListID); err != nil {
			return nil, err
		}
	}

	tx, err := s.itemRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var listID uuid.UUID
	if req.ShoppingListID != nil {
		listID = *req.ShoppingListID
	} else {
		list, derr := s.listRepo.GetOrCreateDefault(ctx, tx, caller.ID)
		if derr != nil {
			err = derr
			return nil, fmt.Errorf("failed to add item: %w", err)
		}
		listID = list.ID
	}

	item := &model.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: listID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
	}

	if err = s.itemRepo.Upsert(ctx, tx, item); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("list_id", listID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	s.logger.Info().
		Str("item_id", item.ID.String()).
		Str("list_id", listID.String()).
		Str("product_id", req.ProductID.String()).
		Msg("item added to shopping list")

	return &model.ItemResponse{
		ShoppingListItem: *item,
		Product:          *product,
		LineTotal:        item.LineTotal(),
	}, nil
}

// GetItem retrieves one of the caller's items with product details.
func (s *listService) GetItem(ctx context.Context, caller *model.User, id uuid.UUID) (*model.ItemResponse, error) {
	item, err := s.ownedItem(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", item.ProductID.String()).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return &model.ItemResponse{
		ShoppingListItem: *item,
		Product:          *product,
		LineTotal:        item.LineTotal(),
	}, nil
}

// UpdateItem applies changes to one of the caller's items.
func (s *listService) UpdateItem(ctx context.Context, caller *model.User, id uuid.UUID, req *model.ItemUpdateRequest) (*model.ItemResponse, error) {
	if err := validateItemUpdateRequest(req); err != nil {
		return nil, err
	}

	item, err := s.ownedItem(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.IsPurchased != nil {
		item.IsPurchased = *req.IsPurchased
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", item.ProductID.String()).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if product == nil {
		// The product was deleted while the update was in flight.
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("item_id", item.ID.String()).Msg("shopping list item updated")

	return &model.ItemResponse{
		ShoppingListItem: *item,
		Product:          *product,
		LineTotal:        item.LineTotal(),
	}, nil
}

// DeleteItem removes one of the caller's items.
func (s *listService) DeleteItem(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if _, err := s.ownedItem(ctx, caller, id); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("item_id", id.String()).Msg("shopping list item deleted")

	return nil
}

// ownedList fetches a list and verifies the caller owns it. The check runs
// on every read and mutation of a list; client-supplied identifiers are
// never trusted on their own.
func (s *listService) ownedList(ctx context.Context, caller *model.User, id uuid.UUID) (*model.ShoppingList, error) {
	list, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("list_id", id.String()).Msg("failed to get shopping list")
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	if list == nil {
		return nil, model.ErrListNotFound
	}
	if list.UserID != caller.ID {
		s.logger.Warn().
			Str("list_id", id.String()).
			Str("caller_id", caller.ID.String()).
			Msg("caller attempted to access a foreign shopping list")
		return nil, model.ErrNotListOwner
	}
	return list, nil
}

// ownedItem fetches an item, then its parent list, and verifies the caller
// owns that list.
func (s *listService) ownedItem(ctx context.Context, caller *model.User, id uuid.UUID) (*model.ShoppingListItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to get shopping list item")
		return nil, fmt.Errorf("failed to get shopping list item: %w", err)
	}
	if item == nil {
		return nil, model.ErrItemNotFound
	}

	if _, err := s.ownedList(ctx, caller, item.ShoppingListID); err != nil {
		return nil, err
	}

	return item, nil
}

// buildListResponse attaches the list's items and freshly computed
// aggregates.
func (s *listService) buildListResponse(ctx context.Context, list *model.ShoppingList) (*model.ShoppingListResponse, error) {
	details, err := s.itemRepo.GetDetailByList(ctx, list.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("list_id", list.ID.String()).Msg("failed to get list items")
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}

	items := make([]model.ItemResponse, 0, len(details))
	rows := make([]model.ShoppingListItem, 0, len(details))
	for _, d := range details {
		items = append(items, model.NewItemResponse(d))
		rows = append(rows, d.Item)
	}

	return &model.ShoppingListResponse{
		ShoppingList: *list,
		Items:        items,
		Summary:      model.Summarize(rows, list.Budget),
	}, nil
}

// validateListRequest validates the shopping list payload.
func validateListRequest(req *model.ShoppingListRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Shopping list payload is required")
	}
	if req.Budget != nil && req.Budget.IsNegative() {
		return model.ErrInvalidBudget
	}
	return nil
}

// validateItemCreateRequest validates the item creation payload.
func validateItemCreateRequest(req *model.ItemCreateRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Item payload is required")
	}
	if req.ProductID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Product ID is required")
	}
	if req.Quantity < 1 {
		return model.ErrInvalidQuantity
	}
	if req.UnitPrice.IsNegative() {
		return model.ErrInvalidPrice
	}
	return nil
}

// validateItemUpdateRequest validates the partial item update payload.
func validateItemUpdateRequest(req *model.ItemUpdateRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Item payload is required")
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return model.ErrInvalidQuantity
	}
	if req.UnitPrice != nil && req.UnitPrice.IsNegative() {
		return model.ErrInvalidPrice
	}
	return nil
}

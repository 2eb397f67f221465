package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"canasta/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_Create(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	listID := uuid.New()
	productID := uuid.New()

	itemResponse := &model.ItemResponse{
		ShoppingListItem: model.ShoppingListItem{
			ID:             uuid.New(),
			ShoppingListID: listID,
			ProductID:      productID,
			Quantity:       2,
			UnitPrice:      decimal.RequireFromString("10.00"),
		},
		Product:   model.Product{ID: productID, SKU: "ARR-001", Name: "Arroz"},
		LineTotal: decimal.RequireFromString("20.00"),
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockListService)
		expectedStatus int
	}{
		{
			name: "Success with explicit list",
			body: `{"shoppingListId":"` + listID.String() + `","productId":"` + productID.String() + `","quantity":2,"unitPrice":"10.00"}`,
			setupMock: func(m *MockListService) {
				m.On("AddItem", mock.Anything, caller, mock.AnythingOfType("*model.ItemCreateRequest")).
					Return(itemResponse, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Success without list uses default",
			body: `{"productId":"` + productID.String() + `","quantity":2,"unitPrice":"10.00"}`,
			setupMock: func(m *MockListService) {
				m.On("AddItem", mock.Anything, caller, mock.AnythingOfType("*model.ItemCreateRequest")).
					Return(itemResponse, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			body:           `{{{`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown product",
			body: `{"productId":"` + productID.String() + `","quantity":1,"unitPrice":"5.00"}`,
			setupMock: func(m *MockListService) {
				m.On("AddItem", mock.Anything, caller, mock.AnythingOfType("*model.ItemCreateRequest")).
					Return(nil, model.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Invalid quantity",
			body: `{"productId":"` + productID.String() + `","quantity":0,"unitPrice":"5.00"}`,
			setupMock: func(m *MockListService) {
				m.On("AddItem", mock.Anything, caller, mock.AnythingOfType("*model.ItemCreateRequest")).
					Return(nil, model.ErrInvalidQuantity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Foreign list",
			body: `{"shoppingListId":"` + listID.String() + `","productId":"` + productID.String() + `","quantity":1,"unitPrice":"5.00"}`,
			setupMock: func(m *MockListService) {
				m.On("AddItem", mock.Anything, caller, mock.AnythingOfType("*model.ItemCreateRequest")).
					Return(nil, model.ErrNotListOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			tt.setupMock(mockService)

			handler := NewItemHandler(mockService, zerolog.Nop())

			rec := httptest.NewRecorder()
			handler.Create(rec, authedRequest(http.MethodPost, "/api/shopping-list-items", tt.body, caller))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestItemHandler_Create_NoCaller(t *testing.T) {
	mockService := new(MockListService)
	handler := NewItemHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/shopping-list-items", nil)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockService.AssertNotCalled(t, "AddItem")
}

func TestItemHandler_GetAll(t *testing.T) {
	caller := &model.User{ID: uuid.New()}

	items := []model.ItemResponse{
		{
			ShoppingListItem: model.ShoppingListItem{
				ID:        uuid.New(),
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("4.50"),
			},
			Product:   model.Product{ID: uuid.New(), SKU: "ARR-001", Name: "Arroz"},
			LineTotal: decimal.RequireFromString("9.00"),
		},
	}

	mockService := new(MockListService)
	mockService.On("GetItems", mock.Anything, caller).Return(items, nil)

	handler := NewItemHandler(mockService, zerolog.Nop())

	rec := httptest.NewRecorder()
	handler.GetAll(rec, authedRequest(http.MethodGet, "/api/shopping-list-items", "", caller))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.ItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Arroz", got[0].Product.Name)
}

func TestItemHandler_GetByID(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	itemID := uuid.New()

	itemResponse := &model.ItemResponse{
		ShoppingListItem: model.ShoppingListItem{
			ID:        itemID,
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("10.00"),
		},
		Product:   model.Product{ID: uuid.New(), SKU: "ARR-001", Name: "Arroz"},
		LineTotal: decimal.RequireFromString("20.00"),
	}

	tests := []struct {
		name           string
		id             string
		setupMock      func(m *MockListService)
		expectedStatus int
	}{
		{
			name: "Success",
			id:   itemID.String(),
			setupMock: func(m *MockListService) {
				m.On("GetItem", mock.Anything, caller, itemID).Return(itemResponse, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Malformed ID",
			id:             "not-a-uuid",
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   itemID.String(),
			setupMock: func(m *MockListService) {
				m.On("GetItem", mock.Anything, caller, itemID).Return(nil, model.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Foreign item",
			id:   itemID.String(),
			setupMock: func(m *MockListService) {
				m.On("GetItem", mock.Anything, caller, itemID).Return(nil, model.ErrNotListOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			tt.setupMock(mockService)

			handler := NewItemHandler(mockService, zerolog.Nop())

			req := authedRequest(http.MethodGet, "/api/shopping-list-items/"+tt.id, "", caller)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.ItemResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, itemID, got.ID)
				assert.Equal(t, "Arroz", got.Product.Name)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestItemHandler_GetByID_NoCaller(t *testing.T) {
	mockService := new(MockListService)
	handler := NewItemHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/shopping-list-items/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	handler.GetByID(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockService.AssertNotCalled(t, "GetItem")
}

func TestItemHandler_Update(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	itemID := uuid.New()

	updated := &model.ItemResponse{
		ShoppingListItem: model.ShoppingListItem{
			ID:          itemID,
			Quantity:    3,
			UnitPrice:   decimal.RequireFromString("10.00"),
			IsPurchased: true,
		},
		Product:   model.Product{ID: uuid.New(), Name: "Arroz"},
		LineTotal: decimal.RequireFromString("30.00"),
	}

	mockService := new(MockListService)
	mockService.On("UpdateItem", mock.Anything, caller, itemID, mock.AnythingOfType("*model.ItemUpdateRequest")).
		Return(updated, nil)

	handler := NewItemHandler(mockService, zerolog.Nop())

	req := authedRequest(http.MethodPut, "/api/shopping-list-items/"+itemID.String(),
		`{"quantity":3,"isPurchased":true}`, caller)
	req = withURLParam(req, "id", itemID.String())
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.ItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.IsPurchased)
	assert.Equal(t, 3, got.Quantity)

	mockService.AssertExpectations(t)
}

func TestItemHandler_Update_ForeignItem(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	itemID := uuid.New()

	mockService := new(MockListService)
	mockService.On("UpdateItem", mock.Anything, caller, itemID, mock.AnythingOfType("*model.ItemUpdateRequest")).
		Return(nil, model.ErrNotListOwner)

	handler := NewItemHandler(mockService, zerolog.Nop())

	req := authedRequest(http.MethodPut, "/api/shopping-list-items/"+itemID.String(),
		`{"isPurchased":true}`, caller)
	req = withURLParam(req, "id", itemID.String())
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestItemHandler_Delete(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	itemID := uuid.New()

	mockService := new(MockListService)
	mockService.On("DeleteItem", mock.Anything, caller, itemID).Return(nil)

	handler := NewItemHandler(mockService, zerolog.Nop())

	req := authedRequest(http.MethodDelete, "/api/shopping-list-items/"+itemID.String(), "", caller)
	req = withURLParam(req, "id", itemID.String())
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}

func TestItemHandler_Delete_NotFound(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	itemID := uuid.New()

	mockService := new(MockListService)
	mockService.On("DeleteItem", mock.Anything, caller, itemID).Return(model.ErrItemNotFound)

	handler := NewItemHandler(mockService, zerolog.Nop())

	req := authedRequest(http.MethodDelete, "/api/shopping-list-items/"+itemID.String(), "", caller)
	req = withURLParam(req, "id", itemID.String())
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoplite/internal/common"
	"shoplite/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func TestListProducts_Success(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewProductHandlers(svc)

	svc.On("ListProducts", mock.Anything).Return([]*models.Product{
		{ID: uuid.New(), Name: "Widget", Price: 9.99},
		{ID: uuid.New(), Name: "Gadget", Price: 24.50},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "Widget", resp.Data[0].Name)
}

func TestListProducts_EmptyCatalogIsArray(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewProductHandlers(svc)

	svc.On("ListProducts", mock.Anything).Return(nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestGetProduct_Success(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewProductHandlers(svc)

	id := uuid.New()
	svc.On("GetProduct", mock.Anything, id).Return(&models.Product{ID: id, Name: "Widget", Price: 9.99}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Widget")
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewProductHandlers(svc)

	id := uuid.New()
	svc.On("GetProduct", mock.Anything, id).Return(nil, common.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestGetProduct_MalformedID(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewProductHandlers(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetProduct")
}

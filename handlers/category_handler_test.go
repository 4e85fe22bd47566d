package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"takabet-api/models"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) GetCategories() ([]models.Category, error) {
	args := m.Called()
	if categories := args.Get(0); categories != nil {
		return categories.([]models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(req)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(id, req)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(id uint) error {
	return m.Called(id).Error(0)
}

func categoryRouter(svc *mockCategoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(svc)

	router := gin.New()
	router.GET("/api/categories", h.GetCategories)
	router.GET("/api/categories/:slug", h.GetCategoryBySlug)
	router.POST("/api/categories", h.CreateCategory)
	router.PUT("/api/categories/:id", h.UpdateCategory)
	router.DELETE("/api/categories/:id", h.DeleteCategory)
	return router
}

func TestGetCategories_ReturnsList(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("GetCategories").Return([]models.Category{
		{ID: 1, Name: "Sports Betting", Slug: "sports-betting", Order: 1, IsActive: true},
		{ID: 2, Name: "News", Slug: "news", Order: 5, IsActive: true},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	categoryRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "sports-betting", categories[0].Slug)
}

func TestGetCategoryBySlug_NotFound(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("GetCategoryBySlug", "inactive-or-missing").Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/inactive-or-missing", nil)
	categoryRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Category not found"}`, w.Body.String())
}

func TestCreateCategory_MissingName(t *testing.T) {
	svc := new(mockCategoryService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader([]byte(`{"description": "no name"}`)))
	req.Header.Set("Content-Type", "application/json")
	categoryRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateCategory", mock.Anything)
}

func TestCreateCategory_Success(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("CreateCategory", mock.AnythingOfType("models.CreateCategoryRequest")).
		Return(&models.Category{ID: 1, Name: "News", Slug: "news", IsActive: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader([]byte(`{"name": "News"}`)))
	req.Header.Set("Content-Type", "application/json")
	categoryRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	assert.Equal(t, "news", category.Slug)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("UpdateCategory", uint(99), mock.AnythingOfType("models.UpdateCategoryRequest")).
		Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/categories/99", bytes.NewReader([]byte(`{"name": "Renamed"}`)))
	req.Header.Set("Content-Type", "application/json")
	categoryRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("DeleteCategory", uint(99)).Return(gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/categories/99", nil)
	categoryRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Category not found"}`, w.Body.String())
}

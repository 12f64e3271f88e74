package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budget/internal/models"
	"budget/internal/services"
)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/categories", handler.CreateCategory)
	r.GET("/categories", handler.ListCategories)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		categories := services.NewMockCategoryServicer(ctrl)
		categories.EXPECT().
			CreateCategory("Food", "Groceries").
			Return(&models.Category{
				Base:        models.Base{ID: "0190a7a1-2222-7000-8000-000000000002"},
				Name:        "Food",
				Description: "Groceries",
			}, nil)
		r := setupCategoryRouter(NewCategoryHandler(categories, expectAudit(ctrl, "CREATE_CATEGORY", "category")))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","description":"Groceries"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assert.Equal(t, "Food", result["name"])
		assert.Equal(t, "Groceries", result["description"])
	})

	t.Run("DescriptionWrongType", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupCategoryRouter(NewCategoryHandler(services.NewMockCategoryServicer(ctrl), anyAudit(ctrl)))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","description":["x"]}`)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_ERROR")
		assert.Equal(t, "Could not create category", result["message"])
		assertFieldError(t, result, "description")
	})
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := services.NewMockCategoryServicer(ctrl)
	categories.EXPECT().ListCategories().Return([]models.Category{{Name: "Food"}, {Name: "Rent"}}, nil)
	r := setupCategoryRouter(NewCategoryHandler(categories, anyAudit(ctrl)))

	rec := doRequest(r, "GET", "/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, parseJSONArray(t, rec), 2)
}

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/services"

	"github.com/gin-gonic/gin"
)

func TestFoodListEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	foods := services.NewFoodService(db, nil)

	for i := 0; i < 12; i++ {
		food := models.FoodItem{Name: fmt.Sprintf("Dish %02d", i), Price: 1, AddedByEmail: "chef@example.com"}
		if err := foods.Create(&food); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	r := gin.New()
	r.GET("/foodData", NewFoodController(foods).List)

	t.Run("defaults to page 1 limit 10", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foodData", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var page services.FoodPage
		if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(page.Foods) != 10 || page.CurrentPage != 1 || page.TotalPages != 2 || page.TotalItems != 12 {
			t.Errorf("page = %d items, currentPage %d, totalPages %d, totalItems %d; want 10/1/2/12",
				len(page.Foods), page.CurrentPage, page.TotalPages, page.TotalItems)
		}
	})

	t.Run("rejects non-numeric page", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foodData?page=abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

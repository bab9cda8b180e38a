package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStore interface {
	Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type ProductController struct {
	store ProductStore
}

func NewProductController(store ProductStore) *ProductController {
	return &ProductController{store: store}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	// Pointer fields so zero price/quantity still count as present.
	var body struct {
		Name              string   `json:"name" binding:"required"`
		Price             *float64 `json:"price" binding:"required"`
		AvailableQuantity *int     `json:"available_quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and available_quantity are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product := models.Product{
		Name:              body.Name,
		Price:             *body.Price,
		AvailableQuantity: *body.AvailableQuantity,
	}

	id, err := pc.store.Insert(ctx, product)
	if err != nil {
		slog.Error("insert product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	inserted, err := pc.store.FindByID(ctx, id)
	if err != nil {
		slog.Error("re-read of inserted product failed", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusOK, inserted)
}

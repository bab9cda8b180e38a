package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// timestampLayout is the textual order timestamp, local time without a zone,
// matching the documents already stored in the orders collection.
const timestampLayout = "2006-01-02 15:04:05.000000"

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	List(ctx context.Context, offset, limit int64) ([]models.Order, error)
}

type OrderController struct {
	store OrderStore
}

func NewOrderController(store OrderStore) *OrderController {
	return &OrderController{store: store}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		Items []struct {
			ProductID      string  `json:"product_id" binding:"required"`
			BoughtQuantity int     `json:"bought_quantity"`
			TotalAmount    float64 `json:"total_amount"`
		} `json:"items" binding:"dive"`
		UserAddress models.UserAddress `json:"user_address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload: items and a full user_address are required"})
		return
	}

	// Items go to storage under their renamed keys; input order is preserved
	// and an empty list stays an empty list.
	items := make([]models.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, models.OrderItem{
			ProductID:      item.ProductID,
			BoughtQuantity: item.BoughtQuantity,
			TotalAmount:    item.TotalAmount,
		})
	}

	order := models.Order{
		Timestamp:   time.Now().Format(timestampLayout),
		Items:       items,
		UserAddress: body.UserAddress,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := oc.store.Insert(ctx, order)
	if err != nil {
		slog.Error("insert order failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	order.ID = id

	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := oc.store.FindByID(ctx, objID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		slog.Error("find order failed", "id", objID.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) ListOrders(c *gin.Context) {
	var query struct {
		Limit  int64 `form:"limit,default=10" binding:"min=1"`
		Offset int64 `form:"offset,default=0" binding:"min=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be >= 1 and offset must be >= 0"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := oc.store.List(ctx, query.Offset, query.Limit)
	if err != nil {
		slog.Error("list orders failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

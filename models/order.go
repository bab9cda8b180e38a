package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp   string             `bson:"timestamp" json:"timestamp"`
	Items       []OrderItem        `bson:"items" json:"items"`
	UserAddress UserAddress        `bson:"user_address" json:"user_address"`
}

// OrderItem is the storage form of an order line. The key casing and the
// literal space in "Total amount" match the documents already in the orders
// collection and must stay as they are.
type OrderItem struct {
	ProductID      string  `bson:"productId" json:"productId"`
	BoughtQuantity int     `bson:"boughtQuantity" json:"boughtQuantity"`
	TotalAmount    float64 `bson:"Total amount" json:"Total amount"`
}

type UserAddress struct {
	City    string `bson:"city" json:"city" binding:"required"`
	Country string `bson:"country" json:"country" binding:"required"`
	ZipCode string `bson:"zip_code" json:"zip_code" binding:"required"`
}

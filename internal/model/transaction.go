package model

import "time"

// TransactionStatus tracks admin approval of a buy request.
type TransactionStatus string

const (
	TxPending  TransactionStatus = "PENDING"
	TxApproved TransactionStatus = "APPROVED"
	TxRejected TransactionStatus = "REJECTED"
)

// Transaction is a coin buy request. PriceAtPurchase and TotalCost are
// captured at creation time and never recomputed from a later coin price.
type Transaction struct {
	ID              string            `bson:"_id" json:"id"`
	UserID          string            `bson:"userId" json:"userId"` // may dangle if the user is deleted later
	Amount          int64             `bson:"amount" json:"amount"`
	PriceAtPurchase int64             `bson:"priceAtPurchase" json:"priceAtPurchase"`
	TotalCost       int64             `bson:"totalCost" json:"totalCost"`
	Date            time.Time         `bson:"date" json:"date"`
	Status          TransactionStatus `bson:"status" json:"status"`
	IsDeleted       bool              `bson:"isDeleted" json:"isDeleted"`
}

// BuyRequest is the payload for creating a transaction. The unit price is
// always taken from the stored site config; a client-sent price is ignored.
type BuyRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// TxStatusUpdate is the admin payload for approving or rejecting an order.
type TxStatusUpdate struct {
	Status TransactionStatus `json:"status" binding:"required"`
}

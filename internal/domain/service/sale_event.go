// Package service declares the collaborator contracts the engine consumes.
package service

import (
	"context"
)

// SaleEvent is the fire-and-forget notification emitted after a purchase
// commits. Publishing failures never fail or roll back the purchase.
type SaleEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing.
	OrderCode   string `json:"order_code"`
	AccountID   string `json:"account_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	FinalCost   string `json:"final_cost"` // Decimal string, credits charged.
}

// SaleEventPublisher defines the interface for publishing sale events to a
// message queue or webhook.
type SaleEventPublisher interface {
	// PublishSaleEvent publishes a sale event for async processing.
	PublishSaleEvent(ctx context.Context, event *SaleEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

package domain

import "time"

// Order statuses. No transition graph is enforced: any status is
// reachable from any other via update.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// Payment statuses.
const (
	PaymentStatusAdvance = "advance"
	PaymentStatusPartial = "partial"
	PaymentStatusFull    = "full"
)

// DefaultAdvancePaid is the fixed up-front payment collected to confirm
// an order, in minor currency units (৳100).
const DefaultAdvancePaid int64 = 10000

// OrderItem is a line item with name and unit price snapshotted at the
// time of purchase, so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
}

// Order represents a customer order. OrderID is the human-readable
// business identifier ("TN" + numeric id zero-padded to six digits),
// derived once at creation and immutable afterwards.
type Order struct {
	ID              int         `json:"id"`
	OrderID         string      `json:"orderId"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []OrderItem `json:"products"`
	TotalAmount     int64       `json:"totalAmount"`
	AdvancePaid     int64       `json:"advancePaid"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	Notes           *string     `json:"notes"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderPatch carries a partial order update. Nil fields keep the stored
// value. ID and OrderID are not patchable.
type OrderPatch struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	Items           []OrderItem
	TotalAmount     *int64
	AdvancePaid     *int64
	Status          *string
	PaymentStatus   *string
	Notes           *string
}

package store

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"trynex-storefront/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(customer string) *domain.Order {
	return &domain.Order{
		CustomerName:    customer,
		CustomerPhone:   "01712345678",
		CustomerAddress: "Dhaka, Bangladesh",
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "Basic Cotton T-Shirt", Price: 40000, Quantity: 2, Variant: "L / Black"},
		},
		TotalAmount: 80000,
	}
}

// The business identifier is the prefix plus the id zero-padded to six
// digits; wider ids are carried whole, never truncated.
func TestProperty_OrderIDDerivation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("orderIDFor round-trips the numeric id", prop.ForAll(
		func(id int) bool {
			orderID := orderIDFor(id)

			if !strings.HasPrefix(orderID, "TN") {
				return false
			}
			suffix := strings.TrimPrefix(orderID, "TN")
			if len(suffix) < 6 {
				t.Logf("FAIL: suffix %q shorter than six digits", suffix)
				return false
			}
			parsed, err := strconv.Atoi(suffix)
			if err != nil {
				return false
			}
			return parsed == id
		},
		gen.IntRange(1, 10_000_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestOrderIDDerivationExamples(t *testing.T) {
	assert.Equal(t, "TN000007", orderIDFor(7))
	assert.Equal(t, "TN123456", orderIDFor(123456))
	assert.Equal(t, "TN1234567", orderIDFor(1234567))
}

func TestCreateOrderAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	created, err := s.Create(ctx, testOrder("Rahim"))
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "TN000001", created.OrderID)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.Equal(t, domain.PaymentStatusAdvance, created.PaymentStatus)
	assert.Equal(t, domain.DefaultAdvancePaid, created.AdvancePaid)
	assert.Nil(t, created.Notes)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	for _, name := range []string{"Rahim", "Karim", "Fatema"} {
		_, err := s.Create(ctx, testOrder(name))
		require.NoError(t, err)
	}

	orders, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// Creation order is id order; even with equal timestamps the list
	// must be strictly newest-first.
	assert.Equal(t, 3, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
	assert.Equal(t, 1, orders[2].ID)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
}

func TestUpdateOrderPreservesUnsetFields(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	created, err := s.Create(ctx, testOrder("Rahim"))
	require.NoError(t, err)

	status := domain.OrderStatusConfirmed
	updated, err := s.Update(ctx, created.ID, domain.OrderPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, created.CustomerName, updated.CustomerName)
	assert.Equal(t, created.CustomerPhone, updated.CustomerPhone)
	assert.Equal(t, created.CustomerAddress, updated.CustomerAddress)
	assert.Equal(t, created.TotalAmount, updated.TotalAmount)
	assert.Equal(t, created.PaymentStatus, updated.PaymentStatus)
	assert.Equal(t, created.Items, updated.Items)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.OrderID, updated.OrderID)
}

func TestGetOrderByOrderID(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	created, err := s.Create(ctx, testOrder("Rahim"))
	require.NoError(t, err)

	found, err := s.GetByOrderID(ctx, "TN000001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetByOrderID(ctx, "TN999999")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = s.GetByOrderID(ctx, "garbage")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateMissingOrder(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	status := domain.OrderStatusShipped
	_, err := s.Update(ctx, 7, domain.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

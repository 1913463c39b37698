package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

type orderFixture struct {
	orders  *OrderService
	catalog *CatalogService
	repo    *memOrderRepo
	plants  *memPlantRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	plants := newMemPlantRepo()
	orders := newMemOrderRepo(plants)
	svc := NewOrderService(OrderDependencies{
		OrderRepo: orders,
		Tx:        &memTxRunner{orders: orders, plants: plants},
	})
	return &orderFixture{
		orders:  svc,
		catalog: NewCatalogService(plants, nil),
		repo:    orders,
		plants:  plants,
	}
}

func (f *orderFixture) seedPlant(t *testing.T, quantity int) *domain.Plant {
	t.Helper()
	plant, err := f.catalog.CreatePlant(context.Background(), "Nursery", "seller@x.com", PlantCreateInput{
		Name:     "Monstera",
		Image:    "monstera.jpg",
		Category: "indoor",
		Price:    12.5,
		Quantity: quantity,
	})
	require.NoError(t, err)
	return plant
}

func TestPlaceOrderDecrementsStockAtomically(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	plant := f.seedPlant(t, 10)

	order, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{
		PlantID:  plant.ID,
		Quantity: 2,
		Price:    25,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "a@x.com", order.CustomerEmail)

	got, err := f.plants.GetByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantity)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	plant := f.seedPlant(t, 1)

	_, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{PlantID: plant.ID, Quantity: 2})
	assertDomainError(t, err, 409)

	// Nothing was inserted and the stock is untouched.
	listed, err := f.orders.ListCustomerOrders(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, listed)
	got, err := f.plants.GetByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
}

func TestPlaceOrderUnknownPlant(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orders.PlaceOrder(context.Background(), "a@x.com", OrderCreateInput{PlantID: "no-such-id", Quantity: 1})
	assertDomainError(t, err, 404)
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{Quantity: 1})
	assertDomainError(t, err, 400)

	_, err = f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{PlantID: "p", Quantity: 0})
	assertDomainError(t, err, 400)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	plant := f.seedPlant(t, 10)

	order, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{PlantID: plant.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, f.orders.CancelOrder(ctx, "a@x.com", order.ID))

	_, err = f.repo.GetByID(ctx, order.ID)
	assert.Error(t, err)
	got, err := f.plants.GetByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestCancelDeliveredOrderRejected(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	plant := f.seedPlant(t, 10)

	order, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{PlantID: plant.ID, Quantity: 2})
	require.NoError(t, err)
	f.repo.orders[order.ID].Status = domain.OrderStatusDelivered

	err = f.orders.CancelOrder(ctx, "a@x.com", order.ID)
	assertDomainError(t, err, 409)

	// The ledger and the stock are unchanged.
	kept, err := f.repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, kept.Status)
	got, err := f.plants.GetByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantity)
}

func TestCancelMissingOrder(t *testing.T) {
	f := newOrderFixture(t)
	err := f.orders.CancelOrder(context.Background(), "a@x.com", "no-such-id")
	assertDomainError(t, err, 404)
}

func TestListCustomerOrdersFiltersAndEnriches(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	plant := f.seedPlant(t, 10)

	_, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{PlantID: plant.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.orders.PlaceOrder(ctx, "b@x.com", OrderCreateInput{PlantID: plant.ID, Quantity: 1})
	require.NoError(t, err)

	listed, err := f.orders.ListCustomerOrders(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "a@x.com", listed[0].CustomerEmail)
	assert.Equal(t, 2, listed[0].Quantity)
	assert.Equal(t, "Monstera", listed[0].PlantName)
	assert.Equal(t, "monstera.jpg", listed[0].PlantImage)
	assert.Equal(t, "indoor", listed[0].PlantCategory)

	got, err := f.plants.GetByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestListCustomerOrdersKeepsDanglingReference(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	plant := f.seedPlant(t, 10)

	order, err := f.orders.PlaceOrder(ctx, "a@x.com", OrderCreateInput{PlantID: plant.ID, Quantity: 1})
	require.NoError(t, err)
	delete(f.plants.plants, plant.ID)

	listed, err := f.orders.ListCustomerOrders(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, order.ID, listed[0].ID)
	assert.Empty(t, listed[0].PlantName)
	assert.Empty(t, listed[0].PlantCategory)
}

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
)

func seedProducts(t *testing.T, store *storage.MemoryStore) {
	t.Helper()
	inputs := []models.ProductInput{
		{Name: "Es Teh Manis", Price: 5000, Stock: 50, Category: "Minuman"},
		{Name: "Teh Hijau", Price: 7000, Stock: 20, Category: "Minuman"},
		{Name: "Nasi Gudeg", Price: 15000, Stock: 100, Category: "Makanan"},
	}
	for i := range inputs {
		_, err := store.CreateProduct(&inputs[i])
		require.NoError(t, err)
	}
}

func TestFindProductByName(t *testing.T) {
	store := storage.NewMemoryStore()
	seedProducts(t, store)

	tests := []struct {
		fragment string
		want     string
	}{
		{"teh", "Es Teh Manis"}, // ambiguous: first by insertion order wins
		{"TEH HIJAU", "Teh Hijau"},
		{"gudeg", "Nasi Gudeg"},
		{"nAsI", "Nasi Gudeg"},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			product, err := store.FindProductByName(tt.fragment)
			require.NoError(t, err)
			require.NotNil(t, product)
			assert.Equal(t, tt.want, product.Name)
		})
	}

	product, err := store.FindProductByName("rendang")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductIDsAndListing(t *testing.T) {
	store := storage.NewMemoryStore()
	seedProducts(t, store)

	products, err := store.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(3), products[2].ID)

	got, err := store.GetProduct(2)
	require.NoError(t, err)
	assert.Equal(t, "Teh Hijau", got.Name)

	_, err = store.GetProduct(99)
	assert.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	store := storage.NewMemoryStore()
	seedProducts(t, store)

	product, err := store.GetProduct(1)
	require.NoError(t, err)

	updated := *product
	updated.Stock = 7
	require.NoError(t, store.UpdateProduct(&updated))

	got, err := store.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
}

func TestCreateOrderAssignsMonotonicIDs(t *testing.T) {
	store := storage.NewMemoryStore()

	first, err := store.CreateOrder(&models.Order{CustomerName: "Budi", PhoneNumber: "628111", ProductName: "Nasi Gudeg", Quantity: 1, Price: 15000, TotalAmount: 15000})
	require.NoError(t, err)
	second, err := store.CreateOrder(&models.Order{CustomerName: "Siti", PhoneNumber: "628222", ProductName: "Teh Hijau", Quantity: 2, Price: 7000, TotalAmount: 14000})
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, models.OrderStatusPending, first.Status)
	assert.False(t, first.OrderDate.IsZero())

	// Newest first
	orders, err := store.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
}

func TestOrderQueriesAndStatusUpdate(t *testing.T) {
	store := storage.NewMemoryStore()

	_, err := store.CreateOrder(&models.Order{CustomerName: "Budi", PhoneNumber: "628111", ProductName: "Nasi Gudeg", Quantity: 1, Price: 15000, TotalAmount: 15000})
	require.NoError(t, err)
	_, err = store.CreateOrder(&models.Order{CustomerName: "Budi", PhoneNumber: "628111", ProductName: "Kerupuk", Quantity: 3, Price: 3000, TotalAmount: 9000})
	require.NoError(t, err)

	byPhone, err := store.GetOrdersByPhone("628111")
	require.NoError(t, err)
	assert.Len(t, byPhone, 2)

	require.NoError(t, store.UpdateOrderStatus(1, models.OrderStatusConfirmed))

	confirmed, err := store.GetOrdersByStatus(models.OrderStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, uint(1), confirmed[0].ID)

	pending, err := store.GetOrdersByStatus(models.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint(2), pending[0].ID)

	assert.Error(t, store.UpdateOrderStatus(99, models.OrderStatusCancelled))
}

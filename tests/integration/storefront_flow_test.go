package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountapp "github.com/storefront/backend/internal/application/account"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// TestStorefrontFlow walks the main shopper journey: catalog setup,
// browsing, placing an order and managing delivery addresses.
func TestStorefrontFlow(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.registerAndLogin("thandi@example.com", "s3cret-pass")

	// Catalog setup
	w := ts.Request(http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name": "Electronics",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var electronics catalogapp.CategoryResponse
	ts.decode(w, &electronics)

	w = ts.Request(http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name":      "Audio",
		"parent_id": electronics.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var audio catalogapp.CategoryResponse
	ts.decode(w, &audio)

	w = ts.Request(http.MethodPost, "/api/tags", token, map[string]string{"name": "wireless"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var wireless catalogapp.TagResponse
	ts.decode(w, &wireless)

	w = ts.Request(http.MethodPost, "/api/items", token, map[string]interface{}{
		"name":           "Bluetooth Speaker",
		"sku":            "bt-sp-01",
		"price":          "799.99",
		"discount_price": "599.99",
		"stock":          12,
		"category_ids":   []uuid.UUID{audio.ID},
		"tag_ids":        []uuid.UUID{wireless.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var speaker catalogapp.ItemResponse
	ts.decode(w, &speaker)
	assert.Equal(t, "BT-SP-01", speaker.SKU)
	// effective price is the base price minus the discount amount
	assert.True(t, speaker.EffectivePrice.Equal(decimal.RequireFromString("200.00")), speaker.EffectivePrice.String())

	w = ts.Request(http.MethodPost, "/api/items", token, map[string]interface{}{
		"name":         "Laptop Stand",
		"sku":          "lp-st-01",
		"price":        "349.00",
		"stock":        5,
		"category_ids": []uuid.UUID{electronics.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Browsing is public. Listing a parent category includes items of
	// its whole subtree.
	w = ts.Request(http.MethodGet, "/api/items?category=Electronics", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var listed []catalogapp.ItemListResponse
	ts.decode(w, &listed)
	assert.Len(t, listed, 2)

	w = ts.Request(http.MethodGet, "/api/items/Bluetooth%20Speaker", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var fetched catalogapp.ItemResponse
	ts.decode(w, &fetched)
	assert.Equal(t, "Bluetooth Speaker", fetched.Name)
	assert.Contains(t, fetched.Tags, "wireless")

	w = ts.Request(http.MethodGet, "/api/search?item=speaker", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var found []catalogapp.ItemListResponse
	ts.decode(w, &found)
	require.Len(t, found, 1)
	assert.Equal(t, "Bluetooth Speaker", found[0].Name)

	w = ts.Request(http.MethodGet, "/api/categories/hierarchy", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tree []catalogapp.CategoryTreeNode
	ts.decode(w, &tree)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Audio", tree[0].Children[0].Name)

	// Mutations require authentication
	w = ts.Request(http.MethodPost, "/api/categories", "", map[string]string{"name": "Books"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Place an order
	w = ts.Request(http.MethodPost, "/api/create-order", token, map[string]interface{}{
		"cart_items": []map[string]interface{}{
			{"id": speaker.ID, "quantity": 2},
		},
		"delivery_address": map[string]string{
			"address":  "12 Long Street",
			"city":     "Cape Town",
			"province": "Western Cape",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var placed struct {
		OrderID uuid.UUID `json:"order_id"`
	}
	ts.decode(w, &placed)
	require.NotEqual(t, uuid.Nil, placed.OrderID)

	w = ts.Request(http.MethodGet, "/api/orders/"+placed.OrderID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var order struct {
		Total         decimal.Decimal `json:"total"`
		PaymentStatus string          `json:"payment_status"`
		Details       []struct {
			ItemName string `json:"item_name"`
			Quantity int    `json:"quantity"`
		} `json:"details"`
	}
	ts.decode(w, &order)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("1599.98")), order.Total.String())
	require.Len(t, order.Details, 1)
	assert.Equal(t, "Bluetooth Speaker", order.Details[0].ItemName)
	assert.Equal(t, 2, order.Details[0].Quantity)

	// Removing an unknown line reads as not found, not a server error
	w = ts.Request(http.MethodDelete, "/api/orders/"+placed.OrderID.String()+"/details/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = ts.Request(http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := ts.decode(w, nil)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)

	// Delivery addresses
	w = ts.Request(http.MethodPost, "/api/address", token, map[string]string{
		"type":     "primary",
		"address":  "12 Long Street",
		"city":     "Cape Town",
		"province": "Western Cape",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.Request(http.MethodPost, "/api/address", token, map[string]string{
		"type":     "primary",
		"address":  "3 Kloof Street",
		"city":     "Cape Town",
		"province": "Western Cape",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = ts.Request(http.MethodGet, "/api/address", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var addresses []accountapp.AddressResponse
	ts.decode(w, &addresses)
	assert.Len(t, addresses, 1)

	// Current account
	w = ts.Request(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var me accountapp.AccountResponse
	ts.decode(w, &me)
	assert.Equal(t, "thandi@example.com", me.Email)
}

// TestOrderIsolation verifies an order is only visible to the account
// that placed it.
func TestOrderIsolation(t *testing.T) {
	ts := NewTestServer(t)
	buyer := ts.registerAndLogin("buyer@example.com", "s3cret-pass")
	other := ts.registerAndLogin("other@example.com", "s3cret-pass")

	w := ts.Request(http.MethodPost, "/api/categories", buyer, map[string]string{"name": "Kitchen"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var kitchen catalogapp.CategoryResponse
	ts.decode(w, &kitchen)

	w = ts.Request(http.MethodPost, "/api/items", buyer, map[string]interface{}{
		"name":         "French Press",
		"sku":          "fp-001",
		"price":        "349.99",
		"stock":        3,
		"category_ids": []uuid.UUID{kitchen.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var press catalogapp.ItemResponse
	ts.decode(w, &press)

	w = ts.Request(http.MethodPost, "/api/create-order", buyer, map[string]interface{}{
		"cart_items": []map[string]interface{}{
			{"id": press.ID, "quantity": 1},
		},
		"delivery_address": map[string]string{
			"address":  "88 Main Road",
			"city":     "Durban",
			"province": "KwaZulu-Natal",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var placed struct {
		OrderID uuid.UUID `json:"order_id"`
	}
	ts.decode(w, &placed)

	w = ts.Request(http.MethodGet, "/api/orders/"+placed.OrderID.String(), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// Mutations are owner-scoped too
	w = ts.Request(http.MethodPut, "/api/orders/"+placed.OrderID.String()+"/status", other, map[string]string{
		"payment_status": "Paid",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = ts.Request(http.MethodGet, "/api/orders/"+placed.OrderID.String(), buyer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var order struct {
		PaymentStatus string `json:"payment_status"`
		Details       []struct {
			ID uuid.UUID `json:"id"`
		} `json:"details"`
	}
	ts.decode(w, &order)
	assert.Equal(t, "Pending", order.PaymentStatus)
	require.Len(t, order.Details, 1)

	w = ts.Request(http.MethodDelete, "/api/orders/"+placed.OrderID.String()+"/details/"+order.Details[0].ID.String(), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = ts.Request(http.MethodGet, "/api/orders", other, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := ts.decode(w, nil)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(0), env.Meta.Total)
}

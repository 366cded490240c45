package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_Success(t *testing.T) {
	svr := newTestServer()

	body := addItemBody(1, 2)
	body["ingredients"] = []map[string]interface{}{
		{"name": "cheese", "quantity": 1},
		{"name": "lettuce", "quantity": 0},
	}

	rec, env := doJSON(t, svr, "POST", "/api/cart/items", "s1", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var view cartView
	decodeData(t, env, &view)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 200.0, view.TotalPrice)
	assert.Equal(t, 220.0, view.TotalWithAddOns) // (100 + 10) * 2
	assert.NotEmpty(t, view.Lines[0].UniqueID)
}

func TestAddItem_SameProductOverwrites(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 2))
	rec, env := doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 5))
	require.Equal(t, http.StatusCreated, rec.Code)

	var view cartView
	decodeData(t, env, &view)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 5, view.Lines[0].Quantity)
}

func TestAddItem_ClosedBranchRejected(t *testing.T) {
	svr := newTestServer()

	rec, env := doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(9, 1))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "closed")
}

func TestAddItem_UnavailableProductRejected(t *testing.T) {
	svr := newTestServer()

	rec, _ := doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(4, 1))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svr := newTestServer()

	rec, _ := doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(999, 1))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItem_ZeroQuantityRejected(t *testing.T) {
	svr := newTestServer()

	rec, _ := doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItem_UnknownIngredientRejected(t *testing.T) {
	svr := newTestServer()

	body := addItemBody(1, 1)
	body["ingredients"] = []map[string]interface{}{{"name": "truffle", "quantity": 1}}

	rec, env := doJSON(t, svr, "POST", "/api/cart/items", "s1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "truffle")
}

func TestUpdateItem_QuantityZeroRemovesLine(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 2))
	rec, env := doJSON(t, svr, "PATCH", "/api/cart/items/1", "s1", map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	decodeData(t, env, &view)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.TotalItems)
}

func TestUpdateItem_UnknownProductIsNoop(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 2))
	rec, env := doJSON(t, svr, "PATCH", "/api/cart/items/42", "s1", map[string]interface{}{"quantity": 9})
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	decodeData(t, env, &view)
	assert.Equal(t, 2, view.TotalItems)
}

func TestRemoveItem(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 2))
	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(2, 1))

	rec, env := doJSON(t, svr, "DELETE", "/api/cart/items/1", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	decodeData(t, env, &view)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(2), view.Lines[0].ProductID)
}

func TestClearCart(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 2))
	rec, env := doJSON(t, svr, "DELETE", "/api/cart", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cart cleared", env.Message)

	_, env = doJSON(t, svr, "GET", "/api/cart", "s1", nil)
	var view cartView
	decodeData(t, env, &view)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0.0, view.TotalPrice)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "POST", "/api/cart/items", "s1", addItemBody(1, 2))
	_, env := doJSON(t, svr, "GET", "/api/cart", "s2", nil)

	var view cartView
	decodeData(t, env, &view)
	assert.Empty(t, view.Lines)
}

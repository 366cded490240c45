package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/storefront/cart"
	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/config"
	"github.com/ray-remotestate/storefront/database"
	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/server"
	"github.com/ray-remotestate/storefront/session"
)

var (
	openBranch   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	closedBranch = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func TestMain(m *testing.M) {
	config.SecretKey = []byte("test-secret")
	if err := database.ConnectAndMigrate(); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = database.ShutdownDatabase()
	os.Exit(code)
}

// testSnapshot avoids schedules so open/closed does not depend on the wall
// clock during the run.
func testSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		Branches: []models.Branch{
			{ID: openBranch, Name: "Centro", IsOpen: true},
			{ID: closedBranch, Name: "Norte", IsOpen: false},
		},
		Products: []models.Product{
			{
				ID: 1, BranchID: openBranch, Name: "Classic Burger", Price: 100,
				IsAvailable: true, Category: "burgers",
				Ingredients: []models.Ingredient{
					{Name: "cheese", Price: 10},
					{Name: "lettuce", Price: 0},
				},
			},
			{ID: 2, BranchID: openBranch, Name: "Fries", Price: 50, IsAvailable: true, Category: "sides"},
			{ID: 4, BranchID: openBranch, Name: "Sold Out Special", Price: 80, IsAvailable: false, Category: "sides"},
			{ID: 9, BranchID: closedBranch, Name: "Fish Tacos", Price: 95, IsAvailable: true, Category: "tacos"},
		},
	}
}

func newTestServer() *server.Server {
	snapshot := testSnapshot()

	cat := catalog.New()
	cat.Load(snapshot.Branches, snapshot.Products)

	upstream := catalog.NewSimulatedUpstream(snapshot)
	upstream.MinDelay = time.Millisecond
	upstream.MaxDelay = 2 * time.Millisecond

	return server.SetupRoutes(server.Deps{
		Catalog:  cat,
		Fetcher:  catalog.NewFetcher(upstream, cat),
		Cart:     cart.NewMemoryStore(),
		Sessions: session.NewStore(),
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, svr *server.Server, method, target, sessionID string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	}

	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, req)

	// middleware rejections are plain text, everything else is an envelope
	var env envelope
	if len(rec.Body.Bytes()) > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

type cartView struct {
	Lines           []models.CartLine `json:"lines"`
	TotalItems      int               `json:"total_items"`
	TotalPrice      float64           `json:"total_price"`
	TotalWithAddOns float64           `json:"total_with_add_ons"`
}

func addItemBody(productID int64, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
}

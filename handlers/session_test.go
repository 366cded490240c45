package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/utils"
)

type navView struct {
	ActiveTab string          `json:"active_tab"`
	Expanded  map[string]bool `json:"expanded"`
}

func TestNavigation_ActivateTabCollapsesOthers(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "PUT", "/api/session/navigation", "nav-s1",
		map[string]interface{}{"activate_tab": "burgers"})
	doJSON(t, svr, "PUT", "/api/session/navigation", "nav-s1",
		map[string]interface{}{"toggle_section": "drinks"})

	rec, env := doJSON(t, svr, "PUT", "/api/session/navigation", "nav-s1",
		map[string]interface{}{"activate_tab": "sides"})
	require.Equal(t, http.StatusOK, rec.Code)

	var nav navView
	decodeData(t, env, &nav)
	assert.Equal(t, "sides", nav.ActiveTab)
	assert.Equal(t, map[string]bool{"sides": true}, nav.Expanded)
}

func TestNavigation_UnknownBranchParam(t *testing.T) {
	svr := newTestServer()

	rec, _ := doJSON(t, svr, "PUT", "/api/session/navigation", "nav-s2",
		map[string]interface{}{"branch_param": "not-a-uuid"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckout_PatchMergesAcrossRequests(t *testing.T) {
	svr := newTestServer()

	doJSON(t, svr, "PUT", "/api/session/checkout", "nav-s3",
		map[string]interface{}{"name": "Ana"})
	rec, env := doJSON(t, svr, "PUT", "/api/session/checkout", "nav-s3",
		map[string]interface{}{"phone": "555 0101", "delivery_method": "pickup"})
	require.Equal(t, http.StatusOK, rec.Code)

	var form struct {
		Name           string `json:"name"`
		Phone          string `json:"phone"`
		DeliveryMethod string `json:"delivery_method"`
	}
	decodeData(t, env, &form)
	assert.Equal(t, "Ana", form.Name)
	assert.Equal(t, "555 0101", form.Phone)
	assert.Equal(t, "pickup", form.DeliveryMethod)
}

func TestRegisterAndLogin(t *testing.T) {
	svr := newTestServer()

	rec, env := doJSON(t, svr, "POST", "/register", "", map[string]interface{}{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var registered struct {
		AccessToken string `json:"access_token"`
	}
	decodeData(t, env, &registered)
	assert.NotEmpty(t, registered.AccessToken)

	rec, env = doJSON(t, svr, "POST", "/login", "", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var logged struct {
		Roles []string `json:"roles"`
	}
	decodeData(t, env, &logged)
	assert.Equal(t, []string{"user"}, logged.Roles)

	rec, _ = doJSON(t, svr, "POST", "/login", "", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svr := newTestServer()

	body := map[string]interface{}{
		"name":     "Bo",
		"email":    "bo@example.com",
		"password": "secret123",
	}
	rec, _ := doJSON(t, svr, "POST", "/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, svr, "POST", "/register", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "already exists")
}

func TestLogout(t *testing.T) {
	svr := newTestServer()

	token, err := utils.GenerateAccessToken(uuid.New(), []string{string(models.RoleUser)})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "successfully logged out", env.Message)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			cleared = true
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
	assert.True(t, cleared, "refresh_token cookie must be expired")
}

func TestLogout_RequiresToken(t *testing.T) {
	svr := newTestServer()

	rec, _ := doJSON(t, svr, "POST", "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupyedi/cinema-webservice/internal/model"
)

func userEcho(h *UserHandler) *echo.Echo {
	e := echo.New()
	e.POST("/users/register", h.Register)
	e.POST("/users/login", h.Login)
	e.GET("/users/:id", h.GetUser)
	e.GET("/users/:id/purchases", h.GetPurchaseHistory)
	return e
}

func TestLogin(t *testing.T) {
	users := newUserStore(
		model.User{ID: 1, Gsm: "5550001111", Password: "hunter2"},
		model.User{ID: 2, Gsm: "5551234567", Password: "secret"},
		model.User{ID: 3, Gsm: "5559998888", Password: "qwerty"},
	)
	h := NewUserHandler(users, newPurchaseStore())
	e := userEcho(h)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"unknown gsm", `{"gsm":"5400000000","password":"whatever"}`, http.StatusNotFound},
		{"matching credentials", `{"gsm":"5551234567","password":"secret"}`, http.StatusOK},
		{"wrong password", `{"gsm":"5551234567","password":"wrong"}`, http.StatusForbidden},
		{"malformed body", `{"gsm":`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/users/login", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoginFirstGsmMatchDecides(t *testing.T) {
	// Duplicate gsm registrations are possible; the scan stops at the
	// first match, so the second user's password never gets a say.
	users := newUserStore(
		model.User{ID: 1, Gsm: "5551234567", Password: "first"},
		model.User{ID: 2, Gsm: "5551234567", Password: "second"},
	)
	h := NewUserHandler(users, newPurchaseStore())
	e := userEcho(h)

	rec := doJSON(e, http.MethodPost, "/users/login", `{"gsm":"5551234567","password":"second"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/users/login", `{"gsm":"5551234567","password":"first"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginFetchFailure(t *testing.T) {
	users := newUserStore()
	users.err = errStore
	h := NewUserHandler(users, newPurchaseStore())

	rec := doJSON(userEcho(h), http.MethodPost, "/users/login", `{"gsm":"5551234567","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister(t *testing.T) {
	users := newUserStore()
	h := NewUserHandler(users, newPurchaseStore())

	body := `{"gsm":"5551234567","email":"d@example.com","password":"secret","firstname":"Deniz","lastname":"Kaya","age":27}`
	rec := doJSON(userEcho(h), http.MethodPost, "/users/register", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, users.items, 1)
	saved := users.items[0]
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "5551234567", saved.Gsm)
	assert.Equal(t, "secret", saved.Password)

	// The password never appears in the response body.
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegisterSaveFailure(t *testing.T) {
	users := newUserStore()
	users.err = errStore
	h := NewUserHandler(users, newPurchaseStore())

	body := `{"gsm":"5551234567","password":"secret"}`
	rec := doJSON(userEcho(h), http.MethodPost, "/users/register", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetUser(t *testing.T) {
	users := newUserStore(model.User{ID: 5, Gsm: "5551234567", FirstName: "Deniz", LastName: "Kaya", Age: 27, Password: "secret"})
	h := NewUserHandler(users, newPurchaseStore())
	e := userEcho(h)

	rec := doJSON(e, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/users/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Deniz", got.FirstName)
	assert.Equal(t, "Kaya", got.LastName)
	assert.Equal(t, 27, got.Age)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestGetPurchaseHistory(t *testing.T) {
	buyer := model.User{ID: 1, Gsm: "5551234567"}
	other := model.User{ID: 2, Gsm: "5559998888"}
	purchases := newPurchaseStore(
		model.Purchase{ID: 1, User: buyer, Ticket: model.Ticket{ID: 10}},
		model.Purchase{ID: 2, User: other, Ticket: model.Ticket{ID: 11}},
		model.Purchase{ID: 3, User: buyer, Ticket: model.Ticket{ID: 12}},
	)
	h := NewUserHandler(newUserStore(buyer, other), purchases)
	e := userEcho(h)

	rec := doJSON(e, http.MethodGet, "/users/1/purchases", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Purchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint64(10), got[0].Ticket.ID)
	assert.Equal(t, uint64(12), got[1].Ticket.ID)
}

func TestGetPurchaseHistoryEmpty(t *testing.T) {
	h := NewUserHandler(newUserStore(), newPurchaseStore())

	rec := doJSON(userEcho(h), http.MethodGet, "/users/42/purchases", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetPurchaseHistoryFetchFailure(t *testing.T) {
	purchases := newPurchaseStore()
	purchases.err = errStore
	h := NewUserHandler(newUserStore(), purchases)

	rec := doJSON(userEcho(h), http.MethodGet, "/users/42/purchases", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterLoginGetRoundTrip(t *testing.T) {
	users := newUserStore()
	h := NewUserHandler(users, newPurchaseStore())
	e := userEcho(h)

	body := `{"gsm":"5551234567","email":"d@example.com","password":"secret","firstname":"Deniz","lastname":"Kaya","age":27}`
	rec := doJSON(e, http.MethodPost, "/users/register", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/users/login", `{"gsm":"5551234567","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var logged model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logged))
	require.NotZero(t, logged.ID)

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/users/%d", logged.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Deniz", got.FirstName)
	assert.Equal(t, "Kaya", got.LastName)
	assert.Equal(t, 27, got.Age)
}

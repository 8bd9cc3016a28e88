package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grupyedi/cinema-webservice/internal/model"
	"github.com/grupyedi/cinema-webservice/internal/repository"
)

// UserHandler bundles the stores for registration, login, user lookup
// and purchase history.
type UserHandler struct {
	Users     repository.Store[model.User]
	Purchases repository.Store[model.Purchase]
}

// NewUserHandler constructs a UserHandler with the provided stores.
func NewUserHandler(users repository.Store[model.User], purchases repository.Store[model.Purchase]) *UserHandler {
	return &UserHandler{Users: users, Purchases: purchases}
}

type registerReq struct {
	Gsm       string `json:"gsm"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Age       int    `json:"age"`
}

type loginReq struct {
	Gsm      string `json:"gsm"`
	Password string `json:"password"`
}

// Register handles POST /users/register. It builds a user from the
// request fields and saves it. Any save failure, constraint or
// otherwise, surfaces as 403. There is no uniqueness check on gsm, so
// registering the same phone number twice creates two users.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u := model.User{
		Gsm:       req.Gsm,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	}
	if err := h.Users.Save(ctx, &u); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Login handles POST /users/login. It scans all users in order; the
// first one whose gsm matches decides the outcome: matching password
// means 200, anything else 403. When no user carries the gsm at all
// the response is 404. Passwords are compared as plain text by
// contract.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	// A malformed body leaves the fields empty and falls through to
	// the not-found path, the same way missing attributes did in the
	// original service.
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	users, err := h.Users.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch users failed"})
	}
	for _, u := range users {
		if u.Gsm != req.Gsm {
			continue
		}
		if u.Password == req.Password {
			return c.JSON(http.StatusOK, u)
		}
		return c.JSON(http.StatusForbidden, echo.Map{"error": "wrong password"})
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch user failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// GetPurchaseHistory handles GET /users/:id/purchases. It fetches all
// purchases and filters by the referenced user's id. A user with no
// purchases gets an empty list with 200, never a 404.
func (h *UserHandler) GetPurchaseHistory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	purchases, err := h.Purchases.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch purchases failed"})
	}
	out := make([]model.Purchase, 0)
	for _, p := range purchases {
		if p.User.ID == id {
			out = append(out, p)
		}
	}
	return c.JSON(http.StatusOK, out)
}

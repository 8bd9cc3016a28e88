package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grupyedi/cinema-webservice/internal/model"
	"github.com/grupyedi/cinema-webservice/internal/repository"
)

// fakeStore is an in-memory implementation of the generic Store
// contract used by handler tests. idOf and setID bridge the generic
// type to its ID field; err, when set, is returned from every call to
// simulate a store failure.
type fakeStore[T any] struct {
	items  []T
	idOf   func(T) uint64
	setID  func(*T, uint64)
	nextID uint64
	err    error
}

var _ repository.Store[model.User] = (*fakeStore[model.User])(nil)

func (f *fakeStore[T]) GetAll(ctx context.Context) ([]T, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeStore[T]) Get(ctx context.Context, id uint64) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.idOf(f.items[i]) == id {
			v := f.items[i]
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore[T]) Save(ctx context.Context, v *T) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	f.setID(v, f.nextID)
	f.items = append(f.items, *v)
	return nil
}

var errStore = errors.New("store down")

func newUserStore(users ...model.User) *fakeStore[model.User] {
	f := &fakeStore[model.User]{
		idOf:  func(u model.User) uint64 { return u.ID },
		setID: func(u *model.User, id uint64) { u.ID = id },
	}
	for _, u := range users {
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
		f.items = append(f.items, u)
	}
	return f
}

func newMovieStore(movies ...model.Movie) *fakeStore[model.Movie] {
	return &fakeStore[model.Movie]{
		items: movies,
		idOf:  func(m model.Movie) uint64 { return m.ID },
		setID: func(m *model.Movie, id uint64) { m.ID = id },
	}
}

func newGenreStore(genres ...model.Genre) *fakeStore[model.Genre] {
	return &fakeStore[model.Genre]{
		items: genres,
		idOf:  func(g model.Genre) uint64 { return g.ID },
		setID: func(g *model.Genre, id uint64) { g.ID = id },
	}
}

func newSaloonStore(saloons ...model.Saloon) *fakeStore[model.Saloon] {
	return &fakeStore[model.Saloon]{
		items: saloons,
		idOf:  func(s model.Saloon) uint64 { return s.ID },
		setID: func(s *model.Saloon, id uint64) { s.ID = id },
	}
}

func newSessionStore(sessions ...model.MovieSession) *fakeStore[model.MovieSession] {
	return &fakeStore[model.MovieSession]{
		items: sessions,
		idOf:  func(s model.MovieSession) uint64 { return s.ID },
		setID: func(s *model.MovieSession, id uint64) { s.ID = id },
	}
}

func newTicketStore(tickets ...model.Ticket) *fakeStore[model.Ticket] {
	return &fakeStore[model.Ticket]{
		items: tickets,
		idOf:  func(t model.Ticket) uint64 { return t.ID },
		setID: func(t *model.Ticket, id uint64) { t.ID = id },
	}
}

func newPurchaseStore(purchases ...model.Purchase) *fakeStore[model.Purchase] {
	return &fakeStore[model.Purchase]{
		items: purchases,
		idOf:  func(p model.Purchase) uint64 { return p.ID },
		setID: func(p *model.Purchase, id uint64) { p.ID = id },
	}
}

// doJSON performs a request against a bare echo instance with the
// given routes registered and returns the recorder.
func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

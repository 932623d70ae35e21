package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/queue"
	"github.com/farazfarwa/fashionhub/internal/repository"
)

// memStore is an in-memory stand-in for the mongo repositories. It mirrors
// their observable semantics: sentinel errors, newest-first sorting and the
// populate-or-fail behavior of orders and transactions.
type memStore struct {
	users        []model.User
	categories   []model.Category
	products     []model.Product
	orders       []model.Order
	transactions []model.Transaction
	messages     []model.ContactMessage

	tick int // monotonically advances fake creation times
}

func newMemStore() *memStore { return &memStore{} }

// now hands out strictly increasing timestamps so sort order is observable.
func (s *memStore) now() time.Time {
	s.tick++
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(s.tick) * time.Second)
}

// --- UserStore ---

func (s *memStore) Insert(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, e := range s.users {
		if e.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, *u)
	return nil
}

func (s *memStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (s *memStore) List(ctx context.Context) ([]model.User, error) {
	return append([]model.User(nil), s.users...), nil
}

func (s *memStore) UpdateRole(ctx context.Context, id, role string) (model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.User{}, err
	}
	for i, u := range s.users {
		if u.ID == oid {
			s.users[i].Role = role
			s.users[i].UpdatedAt = s.now()
			return s.users[i], nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

// The per-entity stores wrap memStore because their method sets collide
// (List and Insert are claimed by UserStore above).
type categoryStore struct{ s *memStore }

func (cs categoryStore) List(ctx context.Context) ([]model.Category, error) {
	return append([]model.Category(nil), cs.s.categories...), nil
}

func (cs categoryStore) Get(ctx context.Context, id string) (model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range cs.s.categories {
		if c.ID == oid {
			return c, nil
		}
	}
	return model.Category{}, repository.ErrCategoryNotFound
}

func (cs categoryStore) Insert(ctx context.Context, cat *model.Category) error {
	cat.ID = primitive.NewObjectID()
	cat.CreatedAt = cs.s.now()
	cat.UpdatedAt = cat.CreatedAt
	cs.s.categories = append(cs.s.categories, *cat)
	return nil
}

func (cs categoryStore) Update(ctx context.Context, id, name, description string) (model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Category{}, err
	}
	for i, c := range cs.s.categories {
		if c.ID == oid {
			cs.s.categories[i].Name = name
			cs.s.categories[i].Description = description
			cs.s.categories[i].UpdatedAt = cs.s.now()
			return cs.s.categories[i], nil
		}
	}
	return model.Category{}, repository.ErrCategoryNotFound
}

func (cs categoryStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	for i, c := range cs.s.categories {
		if c.ID == oid {
			cs.s.categories = append(cs.s.categories[:i], cs.s.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrCategoryNotFound
}

type productStore struct{ s *memStore }

func (ps productStore) List(ctx context.Context) ([]model.Product, error) {
	return append([]model.Product(nil), ps.s.products...), nil
}

func (ps productStore) ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, err
	}
	var out []model.Product
	for _, p := range ps.s.products {
		if p.CategoryID == oid {
			out = append(out, p)
		}
	}
	return out, nil
}

func (ps productStore) Get(ctx context.Context, id string) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, err
	}
	for _, p := range ps.s.products {
		if p.ID == oid {
			return p, nil
		}
	}
	return model.Product{}, repository.ErrProductNotFound
}

func (ps productStore) Insert(ctx context.Context, p *model.Product) error {
	if !ps.s.categoryExists(p.CategoryID) {
		return repository.ErrCategoryNotFound
	}
	p.ID = primitive.NewObjectID()
	p.CreatedAt = ps.s.now()
	p.UpdatedAt = p.CreatedAt
	ps.s.products = append(ps.s.products, *p)
	return nil
}

func (ps productStore) Update(ctx context.Context, id string, p model.Product) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, err
	}
	if !ps.s.categoryExists(p.CategoryID) {
		return model.Product{}, repository.ErrCategoryNotFound
	}
	for i, e := range ps.s.products {
		if e.ID == oid {
			p.ID = e.ID
			p.CreatedAt = e.CreatedAt
			p.UpdatedAt = ps.s.now()
			ps.s.products[i] = p
			return p, nil
		}
	}
	return model.Product{}, repository.ErrProductNotFound
}

func (ps productStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	for i, p := range ps.s.products {
		if p.ID == oid {
			ps.s.products = append(ps.s.products[:i], ps.s.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (s *memStore) categoryExists(id primitive.ObjectID) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

type orderStore struct{ s *memStore }

func (os orderStore) List(ctx context.Context, userID string) ([]repository.PopulatedOrder, error) {
	var filter *primitive.ObjectID
	if userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, err
		}
		filter = &oid
	}
	var out []repository.PopulatedOrder
	// newest-first: iterate backwards over insertion order
	for i := len(os.s.orders) - 1; i >= 0; i-- {
		o := os.s.orders[i]
		if filter != nil && o.UserID != *filter {
			continue
		}
		name, ok := os.s.userName(o.UserID)
		if !ok {
			return nil, repository.ErrUserNotFound
		}
		out = append(out, repository.PopulatedOrder{Order: o, UserName: name})
	}
	return out, nil
}

func (os orderStore) Insert(ctx context.Context, o *model.Order) error {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = os.s.now()
	o.UpdatedAt = o.CreatedAt
	os.s.orders = append(os.s.orders, *o)
	return nil
}

func (os orderStore) UpdateStatus(ctx context.Context, id, status string) (repository.PopulatedOrder, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.PopulatedOrder{}, err
	}
	for i, o := range os.s.orders {
		if o.ID == oid {
			os.s.orders[i].Status = status
			os.s.orders[i].UpdatedAt = os.s.now()
			name, ok := os.s.userName(o.UserID)
			if !ok {
				return repository.PopulatedOrder{}, repository.ErrUserNotFound
			}
			return repository.PopulatedOrder{Order: os.s.orders[i], UserName: name}, nil
		}
	}
	return repository.PopulatedOrder{}, repository.ErrOrderNotFound
}

func (s *memStore) userName(id primitive.ObjectID) (string, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u.Name, true
		}
	}
	return "", false
}

type transactionStore struct{ s *memStore }

func (ts transactionStore) List(ctx context.Context, userID string) ([]repository.PopulatedTransaction, error) {
	var filter *primitive.ObjectID
	if userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, err
		}
		filter = &oid
	}
	var out []repository.PopulatedTransaction
	for i := len(ts.s.transactions) - 1; i >= 0; i-- {
		t := ts.s.transactions[i]
		if filter != nil && t.UserID != *filter {
			continue
		}
		pt, err := ts.populate(t)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

func (ts transactionStore) Insert(ctx context.Context, t *model.Transaction) (repository.PopulatedTransaction, error) {
	if _, err := ts.populate(*t); err != nil {
		return repository.PopulatedTransaction{}, err
	}
	t.ID = primitive.NewObjectID()
	t.CreatedAt = ts.s.now()
	t.UpdatedAt = t.CreatedAt
	if t.TransactionDate.IsZero() {
		t.TransactionDate = t.CreatedAt
	}
	ts.s.transactions = append(ts.s.transactions, *t)
	return ts.populate(*t)
}

func (ts transactionStore) UpdateStatus(ctx context.Context, id, status string) (repository.PopulatedTransaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.PopulatedTransaction{}, err
	}
	for i, t := range ts.s.transactions {
		if t.ID == oid {
			ts.s.transactions[i].Status = status
			ts.s.transactions[i].UpdatedAt = ts.s.now()
			return ts.populate(ts.s.transactions[i])
		}
	}
	return repository.PopulatedTransaction{}, repository.ErrTransactionNotFound
}

func (ts transactionStore) populate(t model.Transaction) (repository.PopulatedTransaction, error) {
	name, ok := ts.s.userName(t.UserID)
	if !ok {
		return repository.PopulatedTransaction{}, repository.ErrUserNotFound
	}
	for _, p := range ts.s.products {
		if p.ID == t.ProductID {
			return repository.PopulatedTransaction{
				Transaction: t,
				UserName:    name,
				ProductName: p.Name,
				Price:       p.Price,
			}, nil
		}
	}
	return repository.PopulatedTransaction{}, repository.ErrProductNotFound
}

type contactStore struct{ s *memStore }

func (cs contactStore) Insert(ctx context.Context, m *model.ContactMessage) error {
	m.ID = primitive.NewObjectID()
	m.CreatedAt = cs.s.now()
	cs.s.messages = append(cs.s.messages, *m)
	return nil
}

type statsStore struct{ s *memStore }

func (ss statsStore) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(ss.s.products)), nil
}
func (ss statsStore) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(ss.s.users)), nil
}
func (ss statsStore) CountOrders(ctx context.Context) (int64, error) {
	return int64(len(ss.s.orders)), nil
}
func (ss statsStore) SumOrderTotals(ctx context.Context) (float64, error) {
	var sum float64
	for _, o := range ss.s.orders {
		sum += o.TotalAmount
	}
	return sum, nil
}

// recordingEvents captures published order events.
type recordingEvents struct {
	events []queue.OrderPlacedEvent
}

func (r *recordingEvents) PublishOrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error {
	r.events = append(r.events, ev)
	return nil
}

// --- request helpers ---

func request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requestWithID(method, path, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := request(method, path, body)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// seedUser inserts an account directly into the store.
func seedUser(t *testing.T, s *memStore, name, email, role string) model.User {
	t.Helper()
	u := model.User{Name: name, Email: email, Password: "x", Role: role}
	if err := s.Insert(context.Background(), &u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCategory(t *testing.T, s *memStore, name string) model.Category {
	t.Helper()
	cat := model.Category{Name: name, Description: name + " things"}
	if err := (categoryStore{s}).Insert(context.Background(), &cat); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return cat
}

func seedProduct(t *testing.T, s *memStore, name string, price float64, catID primitive.ObjectID) model.Product {
	t.Helper()
	p := model.Product{Name: name, Price: price, Stock: 10, CategoryID: catID}
	if err := (productStore{s}).Insert(context.Background(), &p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tempDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	return openDB(t, path), path
}

// ---- fake client ----

// fakeClient implements client.Client and records every call by name.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	// block, when set, is waited on inside the next mutating call.
	block chan struct{}
	// entered is signalled once a blocked call has started.
	entered chan struct{}

	SignupErr  error
	LoginRet   models.Session
	LoginErr   error
	LogoutErr  error
	Items      []models.Item
	ItemsErr   error
	CreateErr  error
	LastCreate models.NewItem
	DeleteErr  error
	AddErr     error
	RemoveErr  error
	Cart       *models.Cart
	CartErr    error
	OrderRet   *models.Order
	OrderErr   error
	LastCartID *uint64
	Orders     []models.Order
	OrdersErr  error
	DelOrdErr  error
	ClearErr   error
	PingErr    error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) wait() {
	if f.block == nil {
		return
	}
	if f.entered != nil {
		close(f.entered)
	}
	<-f.block
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeClient) Signup(ctx context.Context, username, password string) error {
	f.record("Signup")
	return f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (models.Session, error) {
	f.record("Login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("Logout")
	return f.LogoutErr
}

func (f *fakeClient) ListItems(ctx context.Context) ([]models.Item, error) {
	f.record("ListItems")
	return f.Items, f.ItemsErr
}

func (f *fakeClient) CreateItem(ctx context.Context, item models.NewItem) (*models.Item, error) {
	f.record("CreateItem")
	f.wait()
	f.LastCreate = item
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	created := models.Item{ID: 100, Name: item.Name, Price: item.Price, Description: item.Description}
	f.Items = append(f.Items, created)
	return &created, nil
}

func (f *fakeClient) DeleteItem(ctx context.Context, itemID uint64) error {
	f.record("DeleteItem")
	return f.DeleteErr
}

func (f *fakeClient) AddToCart(ctx context.Context, itemID uint64) error {
	f.record("AddToCart")
	f.wait()
	return f.AddErr
}

func (f *fakeClient) RemoveFromCart(ctx context.Context, itemID uint64) error {
	f.record("RemoveFromCart")
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	if f.Cart != nil {
		kept := f.Cart.Items[:0:0]
		for _, l := range f.Cart.Items {
			if l.ItemID != itemID {
				kept = append(kept, l)
			}
		}
		f.Cart = &models.Cart{ID: f.Cart.ID, UserID: f.Cart.UserID, Items: kept}
	}
	return nil
}

func (f *fakeClient) GetUserCart(ctx context.Context) (*models.Cart, error) {
	f.record("GetUserCart")
	if f.CartErr != nil {
		return nil, f.CartErr
	}
	if f.Cart == nil {
		return &models.Cart{}, nil
	}
	return f.Cart, nil
}

func (f *fakeClient) CreateOrder(ctx context.Context, cartID *uint64) (*models.Order, error) {
	f.record("CreateOrder")
	f.LastCartID = cartID
	if f.OrderErr != nil {
		return nil, f.OrderErr
	}
	f.Cart = nil
	return f.OrderRet, nil
}

func (f *fakeClient) ListUserOrders(ctx context.Context) ([]models.Order, error) {
	f.record("ListUserOrders")
	return f.Orders, f.OrdersErr
}

func (f *fakeClient) DeleteOrder(ctx context.Context, orderID uint64) error {
	f.record("DeleteOrder")
	if f.DelOrdErr != nil {
		return f.DelOrdErr
	}
	kept := f.Orders[:0:0]
	for _, o := range f.Orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	f.Orders = kept
	return nil
}

func (f *fakeClient) ClearUserOrders(ctx context.Context) error {
	f.record("ClearUserOrders")
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Orders = nil
	return nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.record("Ping")
	return f.PingErr
}

// ---- notifier / confirmer ----

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, msg string) {
	n.mu.Lock()
	n.successes = append(n.successes, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	n.errors = append(n.errors, msg)
	n.mu.Unlock()
}

type fixedConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fixedConfirmer) Confirm(_ context.Context, prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

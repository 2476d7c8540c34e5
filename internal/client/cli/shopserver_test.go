package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// shopServer is an in-memory stand-in for the storefront API, just enough
// for end-to-end CLI scenarios.
type shopServer struct {
	mu       sync.Mutex
	users    map[string]string
	token    string
	items    map[uint64]map[string]any
	cart     map[uint64]int
	orders   []map[string]any
	nextID   uint64
	requests []string
	authSeen []string
}

func newShopServer(t *testing.T) (*shopServer, *httptest.Server) {
	t.Helper()
	s := &shopServer{
		users: map[string]string{"alice": "secret"},
		items: map[uint64]map[string]any{
			1: {"id": 1, "name": "Coffee Mug", "price": 10, "description": "ceramic"},
			2: {"id": 2, "name": "Green Tea", "price": 5.5, "description": "loose leaf"},
		},
		cart:   map[uint64]int{},
		nextID: 10,
	}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *shopServer) authorized(r *http.Request) bool {
	return s.token != "" && r.Header.Get("Authorization") == "Bearer "+s.token
}

func (s *shopServer) cartJSON() map[string]any {
	lines := []any{}
	for id, qty := range s.cart {
		lines = append(lines, map[string]any{"id": id, "cart_id": 1, "item_id": id, "quantity": qty, "item": s.items[id]})
	}
	return map[string]any{"id": 1, "user_id": 7, "items": lines}
}

func (s *shopServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route := r.Method + " " + r.URL.Path
	s.requests = append(s.requests, route)
	s.authSeen = append(s.authSeen, r.Header.Get("Authorization"))

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	switch {
	case route == "HEAD /items":
		w.WriteHeader(http.StatusOK)

	case route == "POST /users":
		name, _ := body["username"].(string)
		if _, ok := s.users[name]; ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Username already exists"})
			return
		}
		s.users[name], _ = body["password"].(string)
		writeJSON(w, http.StatusCreated, map[string]any{"message": "User created"})

	case route == "POST /users/login":
		name, _ := body["username"].(string)
		pass, _ := body["password"].(string)
		if p, ok := s.users[name]; !ok || p != pass {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid username or password"})
			return
		}
		s.token = "tok-" + name
		writeJSON(w, http.StatusOK, map[string]any{"message": "Login successful", "token": s.token, "user_id": 7})

	case route == "POST /users/logout":
		s.token = ""
		writeJSON(w, http.StatusOK, map[string]any{"message": "Logged out"})

	case route == "GET /items":
		list := []any{}
		for id := uint64(1); id <= s.nextID; id++ {
			if it, ok := s.items[id]; ok {
				list = append(list, it)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": list})

	case !s.authorized(r):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})

	case route == "POST /items":
		s.nextID++
		body["id"] = s.nextID
		s.items[s.nextID] = body
		writeJSON(w, http.StatusCreated, map[string]any{"item": body})

	case route == "POST /carts":
		id := uint64(body["item_id"].(float64))
		if _, ok := s.items[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Item not found"})
			return
		}
		s.cart[id]++
		writeJSON(w, http.StatusOK, map[string]any{"cart": s.cartJSON()})

	case route == "GET /carts/user":
		if len(s.cart) == 0 {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Cart not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"cart": s.cartJSON()})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/carts/items/"):
		id, _ := strconv.ParseUint(strings.TrimPrefix(r.URL.Path, "/carts/items/"), 10, 64)
		delete(s.cart, id)
		writeJSON(w, http.StatusOK, map[string]any{"message": "removed"})

	case route == "POST /orders":
		if len(s.cart) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Cart is empty"})
			return
		}
		s.nextID++
		order := map[string]any{"id": s.nextID, "user_id": 7, "total": 25.5, "created_at": "2026-01-02T03:04:05Z", "items": []any{}}
		s.orders = append(s.orders, order)
		s.cart = map[uint64]int{}
		writeJSON(w, http.StatusCreated, map[string]any{"order": order})

	case route == "GET /orders/user":
		writeJSON(w, http.StatusOK, map[string]any{"orders": s.orders})

	case route == "DELETE /orders/user":
		s.orders = nil
		writeJSON(w, http.StatusOK, map[string]any{"message": "cleared"})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/orders/"):
		id, _ := strconv.ParseUint(strings.TrimPrefix(r.URL.Path, "/orders/"), 10, 64)
		kept := s.orders[:0:0]
		for _, o := range s.orders {
			if o["id"] != id {
				kept = append(kept, o)
			}
		}
		s.orders = kept
		writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/items/"):
		id, _ := strconv.ParseUint(strings.TrimPrefix(r.URL.Path, "/items/"), 10, 64)
		delete(s.items, id)
		writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})

	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "no route"})
	}
}

func (s *shopServer) count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r == route {
			n++
		}
	}
	return n
}

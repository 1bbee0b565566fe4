package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type pageProduct struct {
	ID    int
	Name  string
	Price int
}

type pageUser struct {
	UserID   int
	Username string
}

func TestRenderIndex(t *testing.T) {
	data := struct {
		Products []pageProduct
		User     *pageUser
	}{
		Products: []pageProduct{
			{ID: 1, Name: "Americano", Price: 100},
			{ID: 2, Name: "Cappuccino", Price: 110},
		},
		User: &pageUser{UserID: 1, Username: "zagreus"},
	}

	w := httptest.NewRecorder()
	if err := Render(w, "index.html", data, http.StatusOK); err != nil {
		t.Fatalf("rendering index: %v", err)
	}

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected an html content type, got %q", ct)
	}

	body := w.Body.String()
	for _, fragment := range []string{"Americano", "Cappuccino", "zagreus", `href="/product/1"`} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("index page does not contain %q", fragment)
		}
	}
}

func TestRenderEmptyCart(t *testing.T) {
	data := struct {
		Items []struct{ ProductName string }
		User  pageUser
	}{}

	w := httptest.NewRecorder()
	if err := Render(w, "cart.html", data, http.StatusOK); err != nil {
		t.Fatalf("rendering cart: %v", err)
	}

	if !strings.Contains(w.Body.String(), "Your cart is empty.") {
		t.Fatal("empty cart page does not say so")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	w := httptest.NewRecorder()
	if err := Render(w, "missing.html", nil, http.StatusOK); err == nil {
		t.Fatal("expected an error for an unknown template")
	}

	// Nothing may reach the writer on failure.
	if w.Body.Len() != 0 {
		t.Fatalf("expected no body, got %q", w.Body.String())
	}
}

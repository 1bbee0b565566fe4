package test

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type productTest struct {
	*TestEnv
}

func TestProduct(t *testing.T) {
	env, err := NewTestEnv(t, "product_test")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	pt := &productTest{env}

	pt.listOK(t)
	pt.showOK(t)
	pt.showMissing(t)
}

func (pt *productTest) listOK(t *testing.T) {
	resp, err := pt.Client().Get(pt.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("listing products: status code %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	body := string(b)
	for _, name := range []string{"Americano", "Cappuccino", "Espresso", "Macchiato"} {
		if !strings.Contains(body, name) {
			t.Fatalf("index page does not list seeded product %s", name)
		}
	}
}

func (pt *productTest) showOK(t *testing.T) {
	resp, err := pt.Client().Get(pt.URL + "/product/1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("showing product 1: status code %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	body := string(b)
	if !strings.Contains(body, "Americano") {
		t.Fatal("product page does not show the product name")
	}
	if !strings.Contains(body, "diluted with hot water") {
		t.Fatal("product page does not show the description")
	}
}

func (pt *productTest) showMissing(t *testing.T) {
	for _, id := range []string{"999", "abc"} {
		resp, err := pt.Client().Get(pt.URL + "/product/" + id)
		if err != nil {
			t.Fatal(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("showing product %s: expected 404, got %s", id, resp.Status)
		}
	}
}

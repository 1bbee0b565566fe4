package test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/cafejs/cafejs/core/auth"
)

func TestLogin(t *testing.T) {
	env, err := NewTestEnv(t, "login_test")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	form := url.Values{}
	form.Set("username", "zagreus")
	form.Set("password", "wrong")

	resp, err := env.Client().PostForm(env.URL+"/login", form)
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}

	// A failed login is a normal response, not a 4xx.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed login: expected 200, got %s", resp.Status)
	}
	if !strings.Contains(string(b), "Invalid login details!") {
		t.Fatal("failed login did not render the failure message")
	}
	if env.SessionToken() != "" {
		t.Fatal("failed login must not issue a session cookie")
	}

	ok, err := env.Login("zagreus", "cerberus")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("valid login did not issue a session cookie")
	}

	usr, found, err := auth.ResolveUser(context.Background(), env.DB, env.Sessions, env.SessionToken())
	if err != nil {
		t.Fatalf("resolving issued token: %v", err)
	}
	if !found {
		t.Fatal("issued token did not resolve to a user")
	}
	if usr.Username != "zagreus" {
		t.Fatalf("token resolved to %q, expected zagreus", usr.Username)
	}

	// An unissued token never resolves and never errors.
	_, found, err = auth.ResolveUser(context.Background(), env.DB, env.Sessions, "unissued-token")
	if err != nil {
		t.Fatalf("resolving unissued token: %v", err)
	}
	if found {
		t.Fatal("unissued token resolved to a user")
	}

	// The index greets the logged-in user.
	resp, err = env.Client().Get(env.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	b, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "zagreus") {
		t.Fatal("index page does not show the logged-in user")
	}
}

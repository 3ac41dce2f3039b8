package spotify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kswain/cochlea/cochlea"
)

func newTestManager(t *testing.T, handler http.HandlerFunc) *TokenManager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := NewTokenManager("id", "secret")
	m.tokenURL = srv.URL
	return m
}

func TestGetAccessTokenCachesWithinLifetime(t *testing.T) {
	var calls int
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if user, pass, ok := r.BasicAuth(); !ok || user != "id" || pass != "secret" {
			t.Errorf("unexpected basic auth: %q %q", user, pass)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "grant_type=client_credentials") {
			t.Errorf("unexpected token request body: %s", body)
		}
		fmt.Fprint(w, `{"access_token":"tok-1","expires_in":3600}`)
	})

	for i := 0; i < 2; i++ {
		tok, err := m.GetAccessToken(context.Background())
		if err != nil {
			t.Fatalf("GetAccessToken: %v", err)
		}
		if tok != "tok-1" {
			t.Errorf("token = %q; want tok-1", tok)
		}
	}

	if calls != 1 {
		t.Errorf("token exchanges = %d; want 1", calls)
	}
}

func TestGetAccessTokenRefreshesAfterExpiry(t *testing.T) {
	var calls int
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":3600}`, calls)
	})

	current := time.Now()
	m.now = func() time.Time { return current }

	first, err := m.GetAccessToken(context.Background())
	if err != nil {
		t.Fatalf("GetAccessToken: %v", err)
	}

	// The safety margin knocks 10 minutes off expires_in, so 50 minutes
	// later the cached slot is already considered expired.
	current = current.Add(50*time.Minute + time.Second)

	second, err := m.GetAccessToken(context.Background())
	if err != nil {
		t.Fatalf("GetAccessToken after expiry: %v", err)
	}

	if first != "tok-1" || second != "tok-2" {
		t.Errorf("tokens = %q, %q; want tok-1, tok-2", first, second)
	}
	if calls != 2 {
		t.Errorf("token exchanges = %d; want 2", calls)
	}
}

func TestGetAccessTokenMissingCredentials(t *testing.T) {
	m := NewTokenManager("", "")

	_, err := m.GetAccessToken(context.Background())
	if !errors.Is(err, cochlea.ErrAuthConfig) {
		t.Errorf("err = %v; want ErrAuthConfig", err)
	}
}

func TestGetAccessTokenExchangeError(t *testing.T) {
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_client","error_description":"Invalid client secret"}`)
	})

	_, err := m.GetAccessToken(context.Background())
	if !errors.Is(err, cochlea.ErrTokenExchange) {
		t.Fatalf("err = %v; want ErrTokenExchange", err)
	}
	if !strings.Contains(err.Error(), "Invalid client secret") {
		t.Errorf("err = %v; want provider detail included", err)
	}
}

func TestAuthTransportInjectsBearer(t *testing.T) {
	m := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok-abc","expires_in":3600}`)
	})

	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	}))
	defer api.Close()

	client := &http.Client{Transport: &authTransport{tokens: m}}
	resp, err := client.Get(api.URL)
	if err != nil {
		t.Fatalf("request through transport: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q; want Bearer tok-abc", gotAuth)
	}
}

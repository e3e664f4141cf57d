package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dutywire/rostersync/pkg/errors"
)

func TestBearerAuthApplied(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "secret")
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if err := DecodeResponse("directory", resp, nil); err != nil {
		t.Fatalf("DecodeResponse() failed: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", gotAuth)
	}
}

func TestHeaderAuthApplied(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&HeaderAuth{Header: "x-api-key"}, "k123")
	resp, err := client.Post(context.Background(), server.URL, map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("Post() failed: %v", err)
	}
	if err := DecodeResponse("registry", resp, nil); err != nil {
		t.Fatalf("DecodeResponse() failed: %v", err)
	}
	if gotKey != "k123" {
		t.Errorf("x-api-key = %q, want k123", gotKey)
	}
}

func TestEmptyCredentialSkipsAuth(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	_ = DecodeResponse("directory", resp, nil)
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestDecodeResponseNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such user", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	err = DecodeResponse("directory", resp, nil)
	if !errors.IsNotFound(err) {
		t.Errorf("404 should match ErrNotFound, got %v", err)
	}
}

func TestDecodeResponseTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username":"a@x.org"}`))
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	var target struct {
		Username string `json:"username"`
	}
	if err := DecodeResponse("directory", resp, &target); err != nil {
		t.Fatalf("DecodeResponse() failed: %v", err)
	}
	if target.Username != "a@x.org" {
		t.Errorf("Username = %q", target.Username)
	}
}

package gists

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	mux := http.NewServeMux()

	mux.HandleFunc("/users/octo/gists", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Portfolio-Website" {
			t.Errorf("unexpected User-Agent %q", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("Accept") != "application/vnd.github.v3+json" {
			t.Errorf("unexpected Accept %q", r.Header.Get("Accept"))
		}
		fmt.Fprintf(w, `[
			{"id": "ok", "url": "%[1]s/gists/ok", "description": "", "files": {"a.go": {"filename": "a.go", "size": 10}}, "comments": 2},
			{"id": "missing", "url": "%[1]s/gists/missing", "description": "gone", "files": {"b.sh": {"filename": "b.sh", "language": "Shell", "size": 4}}, "comments": 1},
			{"id": "broken", "url": "%[1]s/gists/broken", "description": "bad json", "files": {}}
		]`, server.URL)
	})
	mux.HandleFunc("/gists/ok", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "ok", "description": "", "files": {"a.go": {"filename": "a.go", "content": "package a", "size": 10}}, "comments": 2, "public": true}`)
	})
	mux.HandleFunc("/gists/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("/gists/broken", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":`)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListGists(t *testing.T) {
	server := newGitHubServer(t)
	client := NewClient(server.URL, 5*time.Second, nil)

	gists, err := client.ListGists(context.Background(), "octo")
	if err != nil {
		t.Fatalf("ListGists: %v", err)
	}

	if len(gists) != 2 {
		t.Fatalf("expected the broken gist to be dropped, got %d gists", len(gists))
	}

	ok := gists[0]
	if ok.ID != "ok" || ok.Description != "No description" {
		t.Errorf("unexpected first gist: %+v", ok)
	}
	if f := ok.Files["a.go"]; f.Content != "package a" || f.Language != "text" {
		t.Errorf("unexpected file: %+v", f)
	}

	missing := gists[1]
	if f := missing.Files["b.sh"]; f.Content != contentUnavailable || f.Language != "Shell" {
		t.Errorf("fallback gist should keep its summary without content: %+v", f)
	}

	totals := Summarize(gists)
	if totals.Count != 2 || totals.Comments != 3 || totals.Files != 2 || totals.Forks != 0 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestListGistsListFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second, nil).ListGists(context.Background(), "octo")
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Errorf("expected a GitHub API error, got %v", err)
	}
}

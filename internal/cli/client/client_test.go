package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewNormalizesServerAddress(t *testing.T) {
	tests := []struct {
		name   string
		server string
		want   string
	}{
		{"bare host", "localhost:5000", "http://localhost:5000"},
		{"http prefix", "http://localhost:5000", "http://localhost:5000"},
		{"https prefix", "https://todo.example.com", "https://todo.example.com"},
		{"trailing slash", "http://localhost:5000/", "http://localhost:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.server, "")
			if c.baseURL != tt.want {
				t.Errorf("baseURL = %q, want %q", c.baseURL, tt.want)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["username"] != "admin" || body["password"] != "password" {
			t.Errorf("unexpected credentials: %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"token":"tok-abc","user":{"id":1,"username":"admin"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	result, err := c.Login(context.Background(), "admin", "password")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token != "tok-abc" {
		t.Errorf("Token = %q, want %q", result.Token, "tok-abc")
	}
	if result.User.ID != 1 || result.User.Username != "admin" {
		t.Errorf("User = %+v", result.User)
	}
}

func TestBearerTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer my-token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer my-token")
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "my-token")
	todos, err := c.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected empty list, got %d items", len(todos))
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Error-Code", "TV-AUTH-4010")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Login(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
	if apiErr.Code != "TV-AUTH-4010" {
		t.Errorf("Code = %q, want %q", apiErr.Code, "TV-AUTH-4010")
	}
	if apiErr.Message != "invalid credentials" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestCreateAndUpdateTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":5,"text":"buy milk","completed":false,"owner_id":1}`))
		case r.Method == http.MethodPut && r.URL.Path == "/items/5":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["text"]; ok {
				t.Error("text should be omitted for completion-only update")
			}
			w.Write([]byte(`{"id":5,"text":"buy milk","completed":true,"owner_id":1}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	todo, err := c.CreateTodo(context.Background(), "buy milk")
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if todo.ID != 5 || todo.Text != "buy milk" {
		t.Errorf("todo = %+v", todo)
	}

	completed := true
	updated, err := c.UpdateTodo(context.Background(), 5, nil, &completed)
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if !updated.Completed {
		t.Error("todo should be completed")
	}
}

func TestDeleteTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/items/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"todo":{"id":3,"text":"old task","completed":true,"owner_id":1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	removed, err := c.DeleteTodo(context.Background(), 3)
	if err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	if removed == nil || removed.ID != 3 {
		t.Errorf("removed = %+v", removed)
	}
}

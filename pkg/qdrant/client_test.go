package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-suggestion-service/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && path == "/collections/existing":
			w.Write([]byte(`{"result": {"status": "green", "points_count": 12}}`))

		case r.Method == http.MethodGet && strings.HasPrefix(path, "/collections/"):
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status": {"error": "Collection not found"}}`))

		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 {
				if val, ok := req.Points[0].Payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"status": {"error": "boom"}}`))
					return
				}
			}
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPut && strings.HasPrefix(path, "/collections/"):
			w.WriteHeader(http.StatusCreated)

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/scroll"):
			var req qdrant.ScrollRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Offset == nil {
				w.Write([]byte(`{"result": {"points": [{"id": "a", "vector": [1, 0], "payload": {"category": "Workout"}}], "next_page_offset": "b"}}`))
				return
			}
			w.Write([]byte(`{"result": {"points": [{"id": "b", "vector": [0, 1], "payload": {"category": "Reading"}}], "next_page_offset": null}}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"result": [{"id": "123", "score": 0.95, "payload": {"key": "value"}}]}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/delete"):
			var req struct {
				Points []string        `json:"points"`
				Filter json.RawMessage `json:"filter"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 && req.Points[0] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if len(req.Points) == 0 && len(req.Filter) == 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL).WithAPIKey("secret")

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(context.Background(), qdrant.CreateCollectionRequest{Name: "test_col"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("GetCollection", func(t *testing.T) {
		info, err := client.GetCollection(context.Background(), "existing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.PointsCount != 12 {
			t.Errorf("expected 12 points, got %d", info.PointsCount)
		}

		_, err = client.GetCollection(context.Background(), "missing")
		if !errors.Is(err, qdrant.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("EnsureCollection", func(t *testing.T) {
		if err := client.EnsureCollection(context.Background(), qdrant.CreateCollectionRequest{Name: "existing"}); err != nil {
			t.Errorf("unexpected error for existing collection: %v", err)
		}
		if err := client.EnsureCollection(context.Background(), qdrant.CreateCollectionRequest{Name: "fresh"}); err != nil {
			t.Errorf("unexpected error for new collection: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"key": "val"}, Vector: []float32{0.1, 0.2}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"cause_500": true}, Vector: []float32{0.1, 0.2}}},
		})
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected error carrying server message, got %v", err)
		}
	})

	t.Run("ScrollAll", func(t *testing.T) {
		filter := qdrant.Filter{Must: []qdrant.Condition{qdrant.MatchKey("version", "v1")}}
		points, err := client.ScrollAll(context.Background(), "test_col", qdrant.ScrollRequest{
			Filter:      &filter,
			Limit:       1,
			WithPayload: true,
			WithVector:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(points) != 2 {
			t.Fatalf("expected 2 points across pages, got %d", len(points))
		}
		if points[1].Payload["category"] != "Reading" {
			t.Errorf("unexpected second page payload: %v", points[1].Payload)
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].ID != "123" {
			t.Errorf("unexpected search results: %v", resp)
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		_, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{Limit: 999})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("DeletePoints", func(t *testing.T) {
		if err := client.DeletePoints(context.Background(), "test_col", []string{"123", "456"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeletePoints(context.Background(), "test_col", []string{"cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("DeletePointsByFilter", func(t *testing.T) {
		filter := qdrant.Filter{MustNot: []qdrant.Condition{qdrant.MatchKey("version", "v2")}}
		if err := client.DeletePointsByFilter(context.Background(), "test_col", filter); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		anon := qdrant.NewClient(ts.URL)
		if _, err := anon.GetCollection(context.Background(), "existing"); err == nil {
			t.Fatal("expected error without api key")
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{Name: "test"}); err == nil {
			t.Errorf("expected error on canceled context")
		}
		if _, err := client.SearchPoints(ctx, "test", qdrant.SearchRequest{}); err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}

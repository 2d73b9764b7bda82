package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Lâmpadas","image_url":"http://localhost:3333/uploads/lampadas.svg"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].ID)
	assert.Equal(t, "Lâmpadas", items[0].Title)
}

func TestClientCreatePoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/points", r.URL.Path)

		var payload CreatePointPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "SP", payload.UF)
		assert.Equal(t, []uint{1, 2}, payload.Items)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"Ecoponto Centro","uf":"SP","city":"São Paulo"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := c.CreatePoint(context.Background(), CreatePointPayload{
		Name:  "Ecoponto Centro",
		UF:    "SP",
		City:  "São Paulo",
		Items: []uint{1, 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, created.ID)
}

func TestClientCreatePointServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"unknown item id"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CreatePoint(context.Background(), CreatePointPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item id")
}

func TestClientCreatePointOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CreatePoint(context.Background(), CreatePointPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

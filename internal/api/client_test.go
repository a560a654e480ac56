package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministeam-seeder/internal/config"
)

func newTestClient(identityURL, catalogURL, socialURL string) *Client {
	return NewClient(&config.Config{
		IdentityURL: identityURL,
		CatalogURL:  catalogURL,
		SocialURL:   socialURL,
	})
}

func TestPostSuccess(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"42"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL, srv.URL)
	result := client.Post(context.Background(), Identity, "/users", map[string]string{"displayName": "Ana"})

	require.True(t, result.OK())
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.JSONEq(t, `{"data":{"id":"42"}}`, string(result.Body))
	assert.Equal(t, "Ana", gotBody["displayName"])
}

func TestPostConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL, srv.URL)
	result := client.Post(context.Background(), Social, "/users/1/friends", map[string]string{"friendId": "2"})

	assert.True(t, result.Conflict())
	assert.False(t, result.OK())
	assert.False(t, result.Failed())
	assert.Equal(t, http.StatusConflict, result.StatusCode)
	assert.NotEmpty(t, result.ErrString())
}

func TestPostApplicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL, srv.URL)
	result := client.Post(context.Background(), Catalog, "/catalog", map[string]string{"gameId": "x"})

	require.True(t, result.Failed())
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Contains(t, result.ErrString(), "catalog API error: 500")
}

func TestPostTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL, srv.URL, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result := client.Post(ctx, Identity, "/users", map[string]string{})

	require.True(t, result.Failed())
	assert.Zero(t, result.StatusCode)
	assert.NotEmpty(t, result.ErrString())
}

func TestServiceString(t *testing.T) {
	assert.Equal(t, "identity", Identity.String())
	assert.Equal(t, "catalog", Catalog.String())
	assert.Equal(t, "social", Social.String())
}

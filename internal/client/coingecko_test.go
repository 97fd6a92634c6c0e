package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetETCtoUSDRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "ethereum-classic", r.URL.Query().Get("ids"))
		w.Write([]byte(`{"ethereum-classic":{"usd":18.237}}`))
	}))
	defer srv.Close()

	c := NewCoinGeckoClient()
	c.baseURL = srv.URL

	rate, err := c.GetETCtoUSDRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "18.24", rate)
}

func TestGetETCtoUSDRate_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient()
	c.baseURL = srv.URL

	_, err := c.GetETCtoUSDRate(context.Background())
	assert.ErrorContains(t, err, "status 429")
}

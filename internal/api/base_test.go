package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestNewClientUsesDefaultsAndTrimsSlash(t *testing.T) {
	client := NewClient(DefaultBaseURL + "/")
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClientBuildsURLFromBase(t *testing.T) {
	var gotURL string
	client := NewClient(DefaultBaseURL)
	client.httpClient.Transport = roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		body := `{"success":true,"data":{"total_operadoras":0,"total_despesas":0,"media_despesas":0}}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL+"/api/estatisticas", gotURL)
}

func TestClientBuildsListQuery(t *testing.T) {
	var gotURL string
	client := NewClient(DefaultBaseURL)
	client.httpClient.Transport = roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"success":true,"data":[]}`)),
			Header:     make(http.Header),
		}, nil
	})

	items, err := client.ListOperators(context.Background(), DefaultListLimit)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.True(t, strings.HasPrefix(gotURL, DefaultBaseURL+"/api/operadoras?"))
	assert.Contains(t, gotURL, "limit=100")
}

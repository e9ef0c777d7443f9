package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConcurrentReads(t *testing.T) {
	var count atomic.Int32
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		switch r.URL.Path {
		case "/api/operadoras":
			w.Write(jsonResponse([]map[string]any{
				{"CNPJ": "11222333000144", "RazaoSocial": "Unimed", "UF": "SP", "ValorDespesas": 10},
			}))
		case "/api/estatisticas":
			w.Write(jsonResponse(map[string]any{"total_operadoras": 1, "total_despesas": 10, "media_despesas": 10}))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	const workers = 50
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, err := client.ListOperators(context.Background(), 10)
				errCh <- err
				return
			}
			_, err := client.GetStatistics(context.Background())
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(workers), count.Load())
}

func TestClientHandlesMalformedJSON(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	})

	detail, err := client.GetOperator(context.Background(), "11222333000144")
	require.Error(t, err)
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	require.NotNil(t, detail)
	assert.Equal(t, "Operadora de Exemplo", detail.RazaoSocial)
}

func TestClientHandlesTruncatedBody(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"CNPJ":"1122`))
	})

	items, err := client.ListOperators(context.Background(), 0)
	require.Error(t, err)
	assert.Len(t, items, 5)
}

func TestClientUnicodePayload(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(jsonResponse([]map[string]any{
			{"CNPJ": "55666777000188", "RazaoSocial": "Assistência Médica São João", "UF": "RS", "ValorDespesas": 1},
		}))
	})

	items, err := client.ListOperators(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Assistência Médica São João", items[0].RazaoSocial)
}

func TestClientNullDataListIsEmpty(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null}`))
	})

	items, err := client.ListOperators(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

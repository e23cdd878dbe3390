package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	mem := NewMemoryAPI()
	scoped := NewScopedAPI("waypoint_scraper", NewScopedAPI("inner", mem))

	scoped.ReportBroken("client.get-auth", "param")
	scoped.ReportWarning("cache.get")
	scoped.ReportCount("cache.size", 3)

	require.Equal(t, []string{"waypoint_scraper: inner: client.get-auth"}, mem.BrokenIds())
	require.Equal(t, []any{"param"}, mem.Broken[0].Params)
	require.Len(t, mem.Warnings, 1)
	require.Equal(t, "waypoint_scraper: inner: cache.get", mem.Warnings[0].Id)
	require.Equal(t, int64(3), mem.Counts["waypoint_scraper: inner: cache.size"])
}

func TestInstrumentResty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	mem := NewMemoryAPI()
	client := resty.New()
	InstrumentResty(client, mem)

	_, err := client.R().Get(server.URL)
	require.NoError(t, err)
	require.Empty(t, mem.Broken)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.R().SetContext(cancelled).Get(server.URL)
	require.Error(t, err)
	require.Empty(t, mem.Broken)
	require.Len(t, mem.Warnings, 1)

	server.Close()
	_, err = client.R().Get(server.URL)
	require.Error(t, err)
	require.Equal(t, []string{"resty.response"}, mem.BrokenIds())
}

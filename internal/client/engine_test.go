package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEngineCaller_ForwardEvents(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		require.Equal(t, "/webhook", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer engine.Close()

	caller := NewEngineCaller(engine.URL, time.Second)
	payload := []byte(`{"object":"page"}`)
	require.NoError(t, caller.ForwardEvents(context.Background(), payload))
	require.Equal(t, payload, gotBody)
	require.Equal(t, "application/json", gotContentType)
}

func TestEngineCaller_ForwardEvents_engineError(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer engine.Close()

	caller := NewEngineCaller(engine.URL, time.Second)
	require.Error(t, caller.ForwardEvents(context.Background(), []byte(`{}`)))
}

func TestEngineCaller_ForwardEvents_unreachable(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	engine.Close()

	caller := NewEngineCaller(engine.URL, time.Second)
	require.Error(t, caller.ForwardEvents(context.Background(), []byte(`{}`)))
}

func TestEngineCaller_ForwardEvents_timeout(t *testing.T) {
	release := make(chan struct{})
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		engine.Close()
	}()

	caller := NewEngineCaller(engine.URL, 20*time.Millisecond)

	start := time.Now()
	err := caller.ForwardEvents(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.Less(t, time.Since(start), time.Second)
}

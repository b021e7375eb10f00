package svc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

func TestExchangeSendsNullSessionFirst(t *testing.T) {
	var raw map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(svc.ChatResponse{SessionID: "s-1", Response: "We build things."})
	}))
	defer server.Close()

	client := svc.NewHTTPChatClient(server.URL+"/", time.Second, logger.NewNopLogger())
	reply := client.Exchange(context.Background(), "What does CYBOGLABS do?", nil)

	assert.False(t, reply.Fallback)
	assert.Equal(t, "s-1", reply.SessionID)
	assert.Equal(t, "We build things.", reply.Text)
	assert.Equal(t, "What does CYBOGLABS do?", raw["message"])
	value, present := raw["session_id"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestExchangeReusesSession(t *testing.T) {
	var req svc.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(svc.ChatResponse{SessionID: *req.SessionID, Response: "ok"})
	}))
	defer server.Close()

	sessionID := "s-1"
	client := svc.NewHTTPChatClient(server.URL, time.Second, logger.NewNopLogger())
	reply := client.Exchange(context.Background(), "hi", &sessionID)
	require.NotNil(t, req.SessionID)
	assert.Equal(t, "s-1", *req.SessionID)
	assert.Equal(t, "s-1", reply.SessionID)
}

func TestExchangeFallsBackOnServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := svc.NewHTTPChatClient(server.URL, time.Second, logger.NewNopLogger())
	reply := client.Exchange(context.Background(), "hi", nil)
	assert.True(t, reply.Fallback)
	assert.Equal(t, svc.FallbackMessage, reply.Text)
	assert.Empty(t, reply.SessionID)
	assert.Equal(t, 1, calls, "failed exchanges must not be retried")
}

func TestExchangeFallsBackOnBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer server.Close()

	client := svc.NewHTTPChatClient(server.URL, time.Second, logger.NewNopLogger())
	assert.True(t, client.Exchange(context.Background(), "hi", nil).Fallback)
}

func TestExchangeWithoutLoggerFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &svc.HTTPChatClient{BaseURL: server.URL, Client: server.Client(), FallbackText: svc.FallbackMessage}
	reply := client.Exchange(context.Background(), "hi", nil)
	assert.True(t, reply.Fallback)
	assert.Equal(t, svc.FallbackMessage, reply.Text)
}

func TestExchangeFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := svc.NewHTTPChatClient(url, time.Second, logger.NewNopLogger())
	reply := client.Exchange(context.Background(), "hi", nil)
	assert.True(t, reply.Fallback)
	assert.Equal(t, svc.FallbackMessage, reply.Text)
}

func TestExchangeFallsBackWhenCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := svc.NewHTTPChatClient(server.URL, time.Second, logger.NewNopLogger())
	assert.True(t, client.Exchange(ctx, "hi", nil).Fallback)
}

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuesioner/metrics"
	"kuesioner/models"
)

func TestHTTPTransportPostsJSON(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := metrics.New()
	s := NewSubmitter(HTTPTransport{EndpointURL: srv.URL}, nil, m)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }

	res := s.Submit(context.Background(), models.ResponseRecord{"nama": "Ani", "A1": "Ya"})

	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]string{
		"nama":      "Ani",
		"A1":        "Ya",
		"timestamp": "2026-01-02T03:04:05.006Z",
	}, gotBody)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("success")))
}

func TestHTTPTransportIgnoresServerStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := NewSubmitter(HTTPTransport{EndpointURL: srv.URL}, nil, nil).
		Submit(context.Background(), models.ResponseRecord{"A1": "Ya"})

	assert.True(t, res.Success, "only dispatch failures count")
}

func TestHTTPTransportConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	m := metrics.New()
	res := NewSubmitter(HTTPTransport{EndpointURL: "http://" + addr + "/exec"}, nil, m).
		Submit(context.Background(), models.ResponseRecord{"A1": "Ya"})

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("failure")))
}

type transportFunc func(ctx context.Context, body []byte) error

func (f transportFunc) Send(ctx context.Context, body []byte) error { return f(ctx, body) }

func TestSubmitterMakesOneAttempt(t *testing.T) {
	attempts := 0
	s := NewSubmitter(transportFunc(func(context.Context, []byte) error {
		attempts++
		return errors.New("dns failure")
	}), nil, nil)

	res := s.Submit(context.Background(), models.ResponseRecord{"A1": "Ya"})

	assert.False(t, res.Success)
	assert.Equal(t, "dns failure", res.Error)
	assert.Equal(t, 1, attempts)
	assert.Contains(t, res.Record, models.TimestampKey)
}

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"kuesioner/metrics"
	"kuesioner/models"
)

// Transport sends a JSON body somewhere and does not read an answer back.
// A nil error only means the request left without a local failure.
type Transport interface {
	Send(ctx context.Context, body []byte) error
}

// HTTPTransport posts to the collector endpoint. The response is drained
// and discarded without looking at the status: the collector answers
// opaquely, so nothing it says can be trusted as an acknowledgement.
type HTTPTransport struct {
	EndpointURL string
	// Client defaults to a client without timeout; the request context is
	// the only deadline.
	Client *http.Client
}

func (t HTTPTransport) Send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := t.Client
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// SubmitResult is the outcome of one submission attempt.
type SubmitResult struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
	Record  models.ResponseRecord `json:"-"`
}

// Submitter stamps records and hands them to the transport once. There is
// no retry.
type Submitter struct {
	transport Transport
	now       func() time.Time
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

func NewSubmitter(transport Transport, logger *zap.Logger, m *metrics.Metrics) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{transport: transport, now: time.Now, logger: logger, metrics: m}
}

// Submit sends record with a fresh timestamp.
func (s *Submitter) Submit(ctx context.Context, record models.ResponseRecord) SubmitResult {
	stamped := record.Stamped(s.now())

	body, err := json.Marshal(stamped)
	if err != nil {
		return s.fail(stamped, fmt.Errorf("encode response: %w", err))
	}
	if err := s.transport.Send(ctx, body); err != nil {
		return s.fail(stamped, err)
	}

	s.metrics.ObserveSubmission(true)
	s.logger.Info("response submitted", zap.String("timestamp", stamped[models.TimestampKey]))
	return SubmitResult{Success: true, Record: stamped}
}

func (s *Submitter) fail(record models.ResponseRecord, err error) SubmitResult {
	s.metrics.ObserveSubmission(false)
	s.logger.Error("error submitting response", zap.Error(err))
	return SubmitResult{Success: false, Error: err.Error(), Record: record}
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultWebhookTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

// webhookService implements ports.WebhookNotifier. One attempt per event;
// the outcome only lands in webhook_deliveries and the log.
type webhookService struct {
	repo       ports.WebhookRepository
	httpClient HTTPClient
	timeout    time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewWebhookService creates a new webhook notifier.
func NewWebhookService(repo ports.WebhookRepository, httpClient HTTPClient, timeout time.Duration, log zerolog.Logger) ports.WebhookNotifier {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &webhookService{
		repo:       repo,
		httpClient: httpClient,
		timeout:    timeout,
		log:        log,
		now:        time.Now,
	}
}

// NotifyVerified posts event to webhookURL in the background.
func (s *webhookService) NotifyVerified(merchantID uuid.UUID, webhookURL string, event domain.VerifiedEvent) {
	go s.deliver(merchantID, webhookURL, event)
}

func (s *webhookService) deliver(merchantID uuid.UUID, webhookURL string, event domain.VerifiedEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Str("transaction_id", event.TransactionID).Msg("webhook: failed to marshal payload")
		return
	}

	record := &domain.WebhookDelivery{
		ID:            uuid.New(),
		MerchantID:    merchantID,
		TransactionID: event.TransactionID,
		WebhookURL:    webhookURL,
		Payload:       string(body),
		Status:        domain.WebhookStatusFailed,
		CreatedAt:     s.now().UTC(),
	}

	status, err := s.post(webhookURL, body)
	if status != 0 {
		record.HTTPStatus = &status
	}
	if err != nil {
		msg := err.Error()
		record.LastError = &msg
		s.log.Warn().Err(err).
			Str("merchant_id", merchantID.String()).
			Str("transaction_id", event.TransactionID).
			Int("status", status).
			Msg("webhook: delivery failed")
	} else {
		record.Status = domain.WebhookStatusDelivered
		s.log.Info().
			Str("merchant_id", merchantID.String()).
			Str("transaction_id", event.TransactionID).
			Int("status", status).
			Msg("webhook: delivered")
	}

	if s.repo == nil {
		return
	}
	if err := s.repo.Create(context.Background(), record); err != nil {
		s.log.Warn().Err(err).Str("transaction_id", event.TransactionID).Msg("webhook: failed to record delivery")
	}
}

func (s *webhookService) post(url string, body []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, fmt.Errorf("non-2xx response %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	return resp.StatusCode, nil
}

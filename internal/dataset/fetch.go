package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves the external vocabulary documents.
//
//go:generate mockgen -source=fetch.go -destination=../mocks/dataset/mock_fetcher.go -package=mock_dataset Fetcher
type Fetcher interface {
	FetchHSK1(ctx context.Context) (HSK1Payload, error)
	FetchKangxi(ctx context.Context) (KangxiPayload, error)
}

// HTTPFetcher fetches the datasets over HTTP with a bounded timeout and a
// small retry budget.
type HTTPFetcher struct {
	client        *resty.Client
	hsk1URL       string
	kangxiURL     string
	retryAttempts uint
}

func NewHTTPFetcher(hsk1URL, kangxiURL string, timeout time.Duration, retryAttempts uint) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(timeout)

	return &HTTPFetcher{
		client:        client,
		hsk1URL:       hsk1URL,
		kangxiURL:     kangxiURL,
		retryAttempts: retryAttempts,
	}
}

func (f *HTTPFetcher) FetchHSK1(ctx context.Context) (HSK1Payload, error) {
	var payload HSK1Payload
	if err := f.fetchJSON(ctx, f.hsk1URL, &payload); err != nil {
		return HSK1Payload{}, fmt.Errorf("f.fetchJSON(%s) > %w", f.hsk1URL, err)
	}
	return payload, nil
}

func (f *HTTPFetcher) FetchKangxi(ctx context.Context) (KangxiPayload, error) {
	var payload KangxiPayload
	if err := f.fetchJSON(ctx, f.kangxiURL, &payload); err != nil {
		return KangxiPayload{}, fmt.Errorf("f.fetchJSON(%s) > %w", f.kangxiURL, err)
	}
	return payload, nil
}

func (f *HTTPFetcher) fetchJSON(ctx context.Context, url string, out any) error {
	return retry.Do(
		func() error {
			res, err := f.client.R().
				SetContext(ctx).
				Get(url)
			if err != nil {
				return fmt.Errorf("client.R().Get > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				err := fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
				if res.StatusCode() >= http.StatusInternalServerError {
					return err
				}
				return retry.Unrecoverable(err)
			}
			if err := json.Unmarshal(res.Body(), out); err != nil {
				// Malformed payloads never get better on retry.
				return retry.Unrecoverable(fmt.Errorf("json.Unmarshal > %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.retryAttempts+1),
		retry.Delay(10*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
	)
}

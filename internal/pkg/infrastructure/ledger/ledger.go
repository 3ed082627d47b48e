package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
)

// Client submits processed batches to an external ledger service over
// HTTP. Submissions are not retried here; a failed submission is
// reported to the caller and the batch owner decides what to do.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type submission struct {
	SubmittedAt time.Time             `json:"submittedAt"`
	Batch       []types.ProcessedData `json:"batch"`
}

type receipt struct {
	ReceiptID string `json:"receiptID"`
}

func (c *Client) Submit(ctx context.Context, batch []types.ProcessedData) (string, error) {
	body, err := json.Marshal(submission{
		SubmittedAt: time.Now().UTC(),
		Batch:       batch,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ledger submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("ledger responded with %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	r := receipt{}
	err = json.Unmarshal(b, &r)
	if err != nil {
		return "", fmt.Errorf("could not decode ledger receipt: %w", err)
	}

	return r.ReceiptID, nil
}

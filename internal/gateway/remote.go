package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

const expensesPath = "/api/expenses"

// GatewayError wraps a failed remote call. It never cascades into ledger
// state: the canonical ledger is the source of truth and the remote store
// follows it on a best-effort basis.
type GatewayError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("remote %s failed: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// RemoteClient is the CRUD contract of the remote expense service.
type RemoteClient interface {
	Create(ctx context.Context, tx models.Transaction) (*RemoteRecord, error)
	List(ctx context.Context) ([]RemoteRecord, error)
	Update(ctx context.Context, id string, tx models.Transaction) (*RemoteRecord, error)
	Delete(ctx context.Context, id string) error
}

// RemoteRecord is a transaction as the remote service represents it. The
// service assigns its own record ids, so they are kept separate from the
// ledger's transaction ids.
type RemoteRecord struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type,omitempty"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// expensePayload is the request body for create and update calls. The
// ledger's transaction id rides along so deletes and updates can address
// the same record later; the service assigns its own id when none is given.
type expensePayload struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type,omitempty"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// remoteErrorBody is the error envelope the remote service returns on failure.
type remoteErrorBody struct {
	Error string `json:"error"`
}

// HTTPRemoteClient talks to the expense service over HTTP.
type HTTPRemoteClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPRemoteClient creates a remote client for the given base URL.
func NewHTTPRemoteClient(baseURL string, timeout time.Duration) *HTTPRemoteClient {
	return &HTTPRemoteClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Create stores a new expense record remotely. The service responds 201
// with the created record, including the id it assigned.
func (c *HTTPRemoteClient) Create(ctx context.Context, tx models.Transaction) (*RemoteRecord, error) {
	var record RemoteRecord
	if err := c.do(ctx, "create", http.MethodPost, expensesPath, payloadFrom(tx), http.StatusCreated, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// List fetches all remote records, ordered by date descending. The ordering
// is authoritative on the service side.
func (c *HTTPRemoteClient) List(ctx context.Context) ([]RemoteRecord, error) {
	var records []RemoteRecord
	if err := c.do(ctx, "list", http.MethodGet, expensesPath, nil, http.StatusOK, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Update replaces the fields of an existing remote record.
func (c *HTTPRemoteClient) Update(ctx context.Context, id string, tx models.Transaction) (*RemoteRecord, error) {
	var record RemoteRecord
	if err := c.do(ctx, "update", http.MethodPut, expensesPath+"/"+id, payloadFrom(tx), http.StatusOK, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a remote record by id.
func (c *HTTPRemoteClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, expensesPath+"/"+id, nil, http.StatusOK, nil)
}

func payloadFrom(tx models.Transaction) *expensePayload {
	return &expensePayload{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Category:    tx.Category,
		Date:        tx.Date,
	}
}

func (c *HTTPRemoteClient) do(ctx context.Context, op, method, path string, payload any, wantStatus int, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &GatewayError{Op: op, Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return &GatewayError{Op: op, Status: resp.StatusCode, Message: decodeRemoteError(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &GatewayError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}

func decodeRemoteError(body io.Reader) string {
	var envelope remoteErrorBody
	if err := json.NewDecoder(body).Decode(&envelope); err != nil || envelope.Error == "" {
		return "unknown remote error"
	}
	return envelope.Error
}

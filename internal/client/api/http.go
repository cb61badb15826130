package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yajai/medtrack/internal/client/models"
)

// HTTPClient talks JSON over REST to the medication API. Timeouts are
// enforced by the underlying http.Client only; no retries are performed
// at this layer.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentialsRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

type credentialsResponse struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
}

type createMedicationRequest struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	TargetOwner string `json:"targetOwner,omitempty"`
}

type createMedicationResponse struct {
	Medicine models.Medication `json:"medicine"`
}

type notificationRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// do sends one JSON request and decodes the response into out (skipped
// when out is nil or the body is empty). Every request carries a fresh
// X-Request-Id; auth, when non-empty, becomes the Authorization header.
func (c *HTTPClient) do(ctx context.Context, method, path, auth string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := c.mapStatus(resp.StatusCode, resp.Status, data); err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mapStatus translates a non-success response into the client error
// taxonomy: 401 means the credential was rejected, anything else carries
// the server's message when one was returned.
func (c *HTTPClient) mapStatus(code int, status string, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	if code == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var mr messageResponse
	if err := json.Unmarshal(body, &mr); err == nil && mr.Message != "" {
		return &RejectedError{Message: mr.Message}
	}
	return &RejectedError{Message: status}
}

func (c *HTTPClient) Login(ctx context.Context, identity, secret string) (string, string, error) {
	var resp credentialsResponse
	req := credentialsRequest{Identity: identity, Secret: secret}
	if err := c.do(ctx, http.MethodPost, "/api/login", "", req, &resp); err != nil {
		return "", "", err
	}
	return resp.Token, resp.Identity, nil
}

func (c *HTTPClient) Register(ctx context.Context, identity, secret string) error {
	req := credentialsRequest{Identity: identity, Secret: secret}
	return c.do(ctx, http.MethodPost, "/api/register", "", req, nil)
}

func (c *HTTPClient) ListMedications(ctx context.Context, auth string) ([]models.Medication, error) {
	var meds []models.Medication
	if err := c.do(ctx, http.MethodGet, "/api/meds", auth, nil, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

func (c *HTTPClient) CreateMedication(ctx context.Context, auth, name, timeOfDay, targetOwner string) (*models.Medication, error) {
	var resp createMedicationResponse
	req := createMedicationRequest{Name: name, Time: timeOfDay, TargetOwner: targetOwner}
	if err := c.do(ctx, http.MethodPost, "/api/meds", auth, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Medicine, nil
}

func (c *HTTPClient) MarkTaken(ctx context.Context, auth string, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/meds/%d", id), auth, nil, nil)
}

func (c *HTTPClient) DeleteMedication(ctx context.Context, auth string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/meds/%d", id), auth, nil, nil)
}

func (c *HTTPClient) ResetMedications(ctx context.Context, auth string) error {
	return c.do(ctx, http.MethodPut, "/api/meds-reset", auth, nil, nil)
}

func (c *HTTPClient) SendNotification(ctx context.Context, auth, message string) error {
	return c.do(ctx, http.MethodPost, "/api/notify", auth, notificationRequest{Message: message}, nil)
}

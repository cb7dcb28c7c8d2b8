// Package client is the HTTP client for the UrbanSim AI backend API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/urbansim-ai/urbansim-cli/internal/reports"
)

// Client represents an HTTP client for the UrbanSim API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a new API client for the given base URL.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetToken sets the bearer token sent with authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues a JSON request and decodes the response into out (when out is
// non-nil). Every request carries a fresh X-Request-ID so failures can be
// correlated with backend logs.
func (c *Client) do(method, path string, body, out any, wantStatus int, opName string) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	reqID := ulid.Make().String()
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to %s (status %d): %s", opName, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	IsAdmin     bool   `json:"is_admin"`
	Message     string `json:"message"`
}

// Login authenticates the user and returns an access token.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	var loginResp LoginResponse
	if err := c.do(http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, &loginResp, http.StatusOK, "log in"); err != nil {
		return nil, err
	}
	return &loginResp, nil
}

// RegisterRequest represents the account registration request body
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	IsAdmin      bool   `json:"is_admin"`
}

// RegisterResponse represents the created account
type RegisterResponse struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	IsAdmin      bool   `json:"is_admin"`
}

// Register creates a new citizen account.
func (c *Client) Register(req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do(http.MethodPost, "/api/users/register", req, &resp, http.StatusOK, "register"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateReportResponse represents the report creation response
type CreateReportResponse struct {
	Message              string   `json:"message"`
	ReportID             int      `json:"report_id"`
	UrgencyLevel         string   `json:"urgency_level"`
	Department           string   `json:"department"`
	AutoAssigned         bool     `json:"auto_assigned"`
	PredictionConfidence *float64 `json:"prediction_confidence"`
}

// CreateReport submits a new issue report.
func (c *Client) CreateReport(submission *reports.Submission) (*CreateReportResponse, error) {
	var resp CreateReportResponse
	if err := c.do(http.MethodPost, "/reports/", submission, &resp, http.StatusOK, "create report"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyReports returns the authenticated user's own reports.
func (c *Client) MyReports() ([]reports.Report, error) {
	var own []reports.Report
	if err := c.do(http.MethodGet, "/users/me/reports", nil, &own, http.StatusOK, "list your reports"); err != nil {
		return nil, err
	}
	return own, nil
}

// PublicStats represents the city-wide counters on the public dashboard
type PublicStats struct {
	TotalReports  int `json:"total_reports"`
	TodayResolved int `json:"today_resolved"`
	ActiveIssues  int `json:"active_issues"`
}

// DashboardSummary represents the public dashboard response
type DashboardSummary struct {
	Message       string           `json:"message"`
	PublicStats   PublicStats      `json:"public_stats"`
	RecentReports []reports.Report `json:"recent_reports"`
}

// Dashboard returns the public dashboard summary.
func (c *Client) Dashboard() (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.do(http.MethodGet, "/dashboard/summary", nil, &summary, http.StatusOK, "load dashboard"); err != nil {
		return nil, err
	}
	return &summary, nil
}

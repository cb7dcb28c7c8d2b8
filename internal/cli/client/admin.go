package client

import (
	"fmt"
	"net/http"
)

// Issue represents a report as seen by the admin triage views.
type Issue struct {
	ID                 int    `json:"id"`
	UserName           string `json:"user_name"`
	UserEmail          string `json:"user_email"`
	UserMobile         string `json:"user_mobile"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	UrgencyLevel       string `json:"urgency_level"`
	Status             string `json:"status"`
	LocationAddress    string `json:"location_address"`
	AssignedDepartment string `json:"assigned_department"`
	ResolutionNotes    string `json:"resolution_notes"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type issuesResponse struct {
	Issues []Issue `json:"issues"`
}

// ListIssues returns every report in the system for triage.
func (c *Client) ListIssues() ([]Issue, error) {
	var resp issuesResponse
	if err := c.do(http.MethodGet, "/api/admin/issues", nil, &resp, http.StatusOK, "list issues"); err != nil {
		return nil, err
	}
	return resp.Issues, nil
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateIssueStatus moves an issue to a new status.
func (c *Client) UpdateIssueStatus(issueID int, status string) error {
	path := fmt.Sprintf("/api/admin/issues/%d/status", issueID)
	return c.do(http.MethodPatch, path, statusUpdateRequest{Status: status}, nil, http.StatusOK, "update issue status")
}

type assignRequest struct {
	Department string `json:"department"`
}

// AssignIssue assigns an issue to a municipal department.
func (c *Client) AssignIssue(issueID int, department string) error {
	path := fmt.Sprintf("/api/admin/issues/%d/assign", issueID)
	return c.do(http.MethodPatch, path, assignRequest{Department: department}, nil, http.StatusOK, "assign issue")
}

type resolveRequest struct {
	ResolutionNotes string `json:"resolution_notes"`
	ResolvedBy      string `json:"resolved_by"`
}

// ResolveIssue marks an issue resolved with a note on what was done.
func (c *Client) ResolveIssue(issueID int, notes, resolvedBy string) error {
	path := fmt.Sprintf("/api/admin/issues/%d/resolve", issueID)
	return c.do(http.MethodPost, path, resolveRequest{ResolutionNotes: notes, ResolvedBy: resolvedBy}, nil, http.StatusOK, "resolve issue")
}

// AdminStats represents the admin dashboard counters
type AdminStats struct {
	TotalIssues    int    `json:"total_issues"`
	ResolvedIssues int    `json:"resolved_issues"`
	PendingIssues  int    `json:"pending_issues"`
	LastUpdated    string `json:"last_updated"`
}

// AdminDashboardStats returns real-time counters for the admin dashboard.
func (c *Client) AdminDashboardStats() (*AdminStats, error) {
	var stats AdminStats
	if err := c.do(http.MethodGet, "/api/admin/dashboard/stats", nil, &stats, http.StatusOK, "load admin stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DepartmentSummary represents one department's workload and efficiency
type DepartmentSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Progress    float64 `json:"progress"`
	Efficiency  float64 `json:"efficiency"`
	TotalIssues int     `json:"total_issues"`
}

type departmentSummaryResponse struct {
	Departments []DepartmentSummary `json:"departments"`
	Period      string              `json:"period"`
}

// DepartmentSummaries returns per-department workload summaries.
func (c *Client) DepartmentSummaries() ([]DepartmentSummary, error) {
	var resp departmentSummaryResponse
	if err := c.do(http.MethodGet, "/api/departments/summary", nil, &resp, http.StatusOK, "load department summary"); err != nil {
		return nil, err
	}
	return resp.Departments, nil
}

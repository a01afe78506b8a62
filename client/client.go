// Package client is a typed HTTP client for the campuscore API. It takes an
// explicit base URL and bearer token, applies a request timeout to every
// call, and retries idempotent GETs once on transport failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
)

// Sentinel errors the SDK maps API failures onto. Use errors.Is to classify.
var (
	ErrValidation   = errors.New("request rejected")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrServer       = errors.New("server error")
)

// APIError carries the structured error returned by the API.
type APIError struct {
	StatusCode int
	Code       dto.ErrorCode
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Is lets errors.Is match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

const defaultTimeout = 10 * time.Second

// Client talks to one campuscore deployment. The zero value is not usable,
// construct it with NewClient.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// NewClient creates a client for the API served at baseURL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after a login or refresh.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope mirrors the API response shape with the payload left raw so each
// caller can decode into its own type.
type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

// do performs one HTTP exchange and decodes the envelope payload into out.
// GET requests are retried once on transport failure; nothing else is ever
// retried.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		if method == http.MethodGet && ctx.Err() == nil {
			resp, err = c.send(ctx, method, path, payload)
		}
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Field = env.Error.Field
		}
		return apiErr
	}

	if !env.Success {
		return fmt.Errorf("malformed response: status %d without success flag", resp.StatusCode)
	}

	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return errors.New("malformed response: missing data payload")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response payload: %w", err)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpc.Do(req)
}

// --- Auth ---

// Login authenticates and stores the returned access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var auth dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: email, Password: password}, &auth)
	if err != nil {
		return nil, err
	}
	c.token = auth.Token.AccessToken
	return &auth, nil
}

// Register creates a new account and stores the returned access token.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var auth dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, &auth); err != nil {
		return nil, err
	}
	c.token = auth.Token.AccessToken
	return &auth, nil
}

// RefreshToken exchanges a refresh token for a new token pair.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	var token dto.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", dto.RefreshTokenRequest{RefreshToken: refreshToken}, &token)
	if err != nil {
		return nil, err
	}
	c.token = token.AccessToken
	return &token, nil
}

// Logout revokes the refresh token server-side and clears the stored token.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	var confirmation dto.SuccessResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", dto.RefreshTokenRequest{RefreshToken: refreshToken}, &confirmation); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// --- Departments ---

// ListDepartments fetches all departments sorted by name.
func (c *Client) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var list []models.Department
	if err := c.do(ctx, http.MethodGet, "/api/v1/departments", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetDepartment fetches one department by ID.
func (c *Client) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	var d models.Department
	if err := c.do(ctx, http.MethodGet, "/api/v1/departments/"+formatID(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDepartment creates a department and returns the stored document.
func (c *Client) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	var d models.Department
	if err := c.do(ctx, http.MethodPost, "/api/v1/departments", req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDepartment applies a sparse patch and returns the post-update view.
func (c *Client) UpdateDepartment(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	var d models.Department
	if err := c.do(ctx, http.MethodPut, "/api/v1/departments/"+formatID(id), req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDepartment deletes a department by ID.
func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	var confirmation dto.SuccessResponse
	return c.do(ctx, http.MethodDelete, "/api/v1/departments/"+formatID(id), nil, &confirmation)
}

// --- Schools ---

// ListSchools fetches all schools sorted by name.
func (c *Client) ListSchools(ctx context.Context) ([]models.School, error) {
	var list []models.School
	if err := c.do(ctx, http.MethodGet, "/api/v1/schools", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetSchool fetches one school by ID.
func (c *Client) GetSchool(ctx context.Context, id int64) (*models.School, error) {
	var s models.School
	if err := c.do(ctx, http.MethodGet, "/api/v1/schools/"+formatID(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSchool creates a school and returns the stored document.
func (c *Client) CreateSchool(ctx context.Context, req dto.CreateSchoolRequest) (*models.School, error) {
	var s models.School
	if err := c.do(ctx, http.MethodPost, "/api/v1/schools", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSchool applies a sparse patch and returns the post-update view.
func (c *Client) UpdateSchool(ctx context.Context, id int64, req dto.UpdateSchoolRequest) (*models.School, error) {
	var s models.School
	if err := c.do(ctx, http.MethodPut, "/api/v1/schools/"+formatID(id), req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSchool deletes a school. Fails with ErrConflict while courses still
// reference it.
func (c *Client) DeleteSchool(ctx context.Context, id int64) error {
	var confirmation dto.SuccessResponse
	return c.do(ctx, http.MethodDelete, "/api/v1/schools/"+formatID(id), nil, &confirmation)
}

// --- Sessions ---

// ListSessions fetches all sessions sorted by name.
func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	var list []models.Session
	if err := c.do(ctx, http.MethodGet, "/api/v1/sessions", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetSession fetches one session by ID.
func (c *Client) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodGet, "/api/v1/sessions/"+formatID(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSession creates a session and returns the stored document.
func (c *Client) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSession applies a sparse patch and returns the post-update view.
func (c *Client) UpdateSession(ctx context.Context, id int64, req dto.UpdateSessionRequest) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPut, "/api/v1/sessions/"+formatID(id), req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession deletes a session. Fails with ErrConflict while courses
// still reference it.
func (c *Client) DeleteSession(ctx context.Context, id int64) error {
	var confirmation dto.SuccessResponse
	return c.do(ctx, http.MethodDelete, "/api/v1/sessions/"+formatID(id), nil, &confirmation)
}

// --- Courses ---

// CourseFilter narrows ListCourses to one school and/or session. Zero values
// mean no filter.
type CourseFilter struct {
	SchoolID  int64
	SessionID int64
}

// ListCourses fetches courses, optionally filtered by school and session.
func (c *Client) ListCourses(ctx context.Context, filter CourseFilter) ([]models.Course, error) {
	path := "/api/v1/courses"
	query := ""
	if filter.SchoolID != 0 {
		query = "?schoolId=" + formatID(filter.SchoolID)
	}
	if filter.SessionID != 0 {
		if query == "" {
			query = "?"
		} else {
			query += "&"
		}
		query += "sessionId=" + formatID(filter.SessionID)
	}

	var list []models.Course
	if err := c.do(ctx, http.MethodGet, path+query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetCourse fetches one course by ID.
func (c *Client) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/api/v1/courses/"+formatID(id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course and returns the stored document.
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPost, "/api/v1/courses", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies a sparse patch and returns the post-update view.
func (c *Client) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPut, "/api/v1/courses/"+formatID(id), req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse deletes a course by ID.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	var confirmation dto.SuccessResponse
	return c.do(ctx, http.MethodDelete, "/api/v1/courses/"+formatID(id), nil, &confirmation)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

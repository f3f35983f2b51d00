package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API is every server call the portal UI needs. Calls after login take the bearer token.
type API interface {
	Register(ctx context.Context, in RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password, role string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (*User, error)
	UpdateProfile(ctx context.Context, token string, in ProfileUpdate) (*User, error)

	RegisterCompany(ctx context.Context, token, name string) (*Company, error)
	Companies(ctx context.Context, token string) ([]Company, error)
	Company(ctx context.Context, token, id string) (*Company, error)
	UpdateCompany(ctx context.Context, token, id string, in CompanyUpdate) (*Company, error)

	PostJob(ctx context.Context, token string, in JobInput) (*Job, error)
	Jobs(ctx context.Context, token, keyword string) ([]Job, error)
	Job(ctx context.Context, token, id string) (*Job, error)
	AdminJobs(ctx context.Context, token string) ([]Job, error)

	Apply(ctx context.Context, token, jobID string) (*Application, error)
	AppliedJobs(ctx context.Context, token string) ([]AppliedJob, error)
	Applicants(ctx context.Context, token, jobID string) (*Applicants, error)
	UpdateStatus(ctx context.Context, token, applicationID, status string) (*Application, error)
}

// HTTPClient talks to the API over HTTP. BaseURL includes the version prefix,
// e.g. http://localhost:8080/api/v1.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

var _ API = (*HTTPClient)(nil)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func call[T any](ctx context.Context, c *HTTPClient, method, path, token string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *HTTPClient, path, token string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Register(ctx context.Context, in RegisterRequest) (*User, error) {
	return call[User](ctx, c, http.MethodPost, "/user/register", "", in)
}

func (c *HTTPClient) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	return call[LoginResult](ctx, c, http.MethodPost, "/user/login", "", map[string]string{
		"email": email, "password": password, "role": role,
	})
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/user/logout", token, nil, nil)
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*User, error) {
	return call[User](ctx, c, http.MethodGet, "/user/profile", token, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, in ProfileUpdate) (*User, error) {
	return call[User](ctx, c, http.MethodPost, "/user/profile/update", token, in)
}

func (c *HTTPClient) RegisterCompany(ctx context.Context, token, name string) (*Company, error) {
	return call[Company](ctx, c, http.MethodPost, "/company/register", token, map[string]string{"companyName": name})
}

func (c *HTTPClient) Companies(ctx context.Context, token string) ([]Company, error) {
	return list[Company](ctx, c, "/company/get", token)
}

func (c *HTTPClient) Company(ctx context.Context, token, id string) (*Company, error) {
	return call[Company](ctx, c, http.MethodGet, "/company/get/"+url.PathEscape(id), token, nil)
}

func (c *HTTPClient) UpdateCompany(ctx context.Context, token, id string, in CompanyUpdate) (*Company, error) {
	return call[Company](ctx, c, http.MethodPut, "/company/update/"+url.PathEscape(id), token, in)
}

func (c *HTTPClient) PostJob(ctx context.Context, token string, in JobInput) (*Job, error) {
	return call[Job](ctx, c, http.MethodPost, "/job/post", token, in)
}

func (c *HTTPClient) Jobs(ctx context.Context, token, keyword string) ([]Job, error) {
	path := "/job/get"
	if keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}
	return list[Job](ctx, c, path, token)
}

func (c *HTTPClient) Job(ctx context.Context, token, id string) (*Job, error) {
	return call[Job](ctx, c, http.MethodGet, "/job/get/"+url.PathEscape(id), token, nil)
}

func (c *HTTPClient) AdminJobs(ctx context.Context, token string) ([]Job, error) {
	return list[Job](ctx, c, "/job/getadminJobs", token)
}

func (c *HTTPClient) Apply(ctx context.Context, token, jobID string) (*Application, error) {
	return call[Application](ctx, c, http.MethodGet, "/application/apply/"+url.PathEscape(jobID), token, nil)
}

func (c *HTTPClient) AppliedJobs(ctx context.Context, token string) ([]AppliedJob, error) {
	return list[AppliedJob](ctx, c, "/application/get", token)
}

func (c *HTTPClient) Applicants(ctx context.Context, token, jobID string) (*Applicants, error) {
	return call[Applicants](ctx, c, http.MethodGet, "/application/"+url.PathEscape(jobID)+"/applicants", token, nil)
}

func (c *HTTPClient) UpdateStatus(ctx context.Context, token, applicationID, status string) (*Application, error) {
	return call[Application](ctx, c, http.MethodPost, "/application/status/"+url.PathEscape(applicationID)+"/update", token,
		map[string]string{"status": status})
}

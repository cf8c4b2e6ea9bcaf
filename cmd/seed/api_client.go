package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

type habitRequest struct {
	Name       string `json:"name"`
	Freq       string `json:"freq"`
	ToComplete int    `json:"to_complete"`
}

type todoRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Register creates a user account and returns its login token.
func (c *APIClient) Register(name, email, password string) (string, error) {
	if err := c.do(http.MethodPost, "/register", "", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, nil); err != nil {
		return "", fmt.Errorf("register %s: %w", email, err)
	}

	var resp loginResponse
	if err := c.do(http.MethodPost, "/login", "", loginRequest{
		Email:    email,
		Password: password,
	}, &resp); err != nil {
		return "", fmt.Errorf("login %s: %w", email, err)
	}
	return resp.Token, nil
}

// CreateHabit creates a habit on behalf of the token's owner.
func (c *APIClient) CreateHabit(token, name, freq string, toComplete int) error {
	return c.do(http.MethodPost, "/habits", token, habitRequest{
		Name:       name,
		Freq:       freq,
		ToComplete: toComplete,
	}, nil)
}

// CreateTodo creates a todo on behalf of the token's owner.
func (c *APIClient) CreateTodo(token, name, date string) error {
	return c.do(http.MethodPost, "/todos", token, todoRequest{
		Name: name,
		Date: date,
	}, nil)
}

func (c *APIClient) do(method, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("TOKEN", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

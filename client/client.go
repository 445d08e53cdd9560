// Package client is a thin API client for the task tracker. It mirrors
// the web UI's state model: it holds exactly the current token and the
// last-fetched task list, mutating the cached list in memory after each
// successful create, update or delete instead of re-fetching.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taskforge/taskforge/models"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	tasks   []models.Task
}

// RegisteredUser is the public part of a created account.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs a previously saved token. The task cache is
// dropped because it may belong to another identity.
func (c *Client) SetToken(token string) {
	c.token = token
	c.tasks = nil
}

func (c *Client) Token() string { return c.token }

func (c *Client) LoggedIn() bool { return c.token != "" }

// Logout discards the token and the cached task list.
func (c *Client) Logout() {
	c.token = ""
	c.tasks = nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(username, password string) (RegisteredUser, error) {
	var resp struct {
		Message string         `json:"message"`
		User    RegisteredUser `json:"user"`
	}
	err := c.do(http.MethodPost, "/auth/register",
		map[string]string{"username": username, "password": password}, &resp)
	return resp.User, err
}

// Login exchanges credentials for a token and keeps it for subsequent
// calls.
func (c *Client) Login(username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(http.MethodPost, "/auth/login",
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.SetToken(resp.Token)
	return nil
}

// Tasks returns the cached task list, fetching it once if the cache is
// cold.
func (c *Client) Tasks() ([]models.Task, error) {
	if c.tasks == nil {
		return c.Refresh()
	}
	return c.tasks, nil
}

// Refresh re-fetches the task list from the server.
func (c *Client) Refresh() ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	c.tasks = tasks
	return tasks, nil
}

// CreateTask creates a task and appends it to the cache.
func (c *Client) CreateTask(title string, description *string) (models.Task, error) {
	var task models.Task
	body := map[string]any{"title": title}
	if description != nil {
		body["description"] = *description
	}
	if err := c.do(http.MethodPost, "/tasks", body, &task); err != nil {
		return models.Task{}, err
	}
	if c.tasks != nil {
		c.tasks = append(c.tasks, task)
	}
	return task, nil
}

// UpdateTask applies a partial update and replaces the cached entry.
func (c *Client) UpdateTask(id int64, patch models.TaskPatch) (models.Task, error) {
	var task models.Task
	if err := c.do(http.MethodPut, fmt.Sprintf("/tasks/%d", id), patch, &task); err != nil {
		return models.Task{}, err
	}
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i] = task
			break
		}
	}
	return task, nil
}

// DeleteTask deletes a task and removes it from the cache.
func (c *Client) DeleteTask(id int64) error {
	if err := c.do(http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil); err != nil {
		return err
	}
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

package gtasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const pageSize = 100

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromCredentialsFile creates a Tasks client from a credentials file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Tasks client from Service Account JSON
// or OAuth desktop app credentials plus a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, tasks.TasksScope)
	if err == nil {
		svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create tasks service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{tasks.TasksScope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s: run scripts/gtasks-auth first", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create tasks service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CheckAccess performs the cheapest authenticated call available.
func (c *Client) CheckAccess(ctx context.Context) error {
	if _, err := c.service.Tasklists.List().MaxResults(1).Context(ctx).Do(); err != nil {
		return fmt.Errorf("tasks access check failed: %w", err)
	}
	return nil
}

// ListTaskLists returns every task list of the account, in API order.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	var out []TaskList
	pageToken := ""
	for {
		call := c.service.Tasklists.List().MaxResults(pageSize).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list task lists: %w", err)
		}
		for _, item := range resp.Items {
			out = append(out, TaskList{ID: item.Id, Title: item.Title})
		}
		if resp.NextPageToken == "" {
			return out, nil
		}
		pageToken = resp.NextPageToken
	}
}

// ListTasks returns the tasks of one list. showCompleted also returns
// completed (and hidden) tasks.
func (c *Client) ListTasks(ctx context.Context, listID string, showCompleted bool) ([]Task, error) {
	var out []Task
	pageToken := ""
	for {
		call := c.service.Tasks.List(listID).
			MaxResults(pageSize).
			ShowCompleted(showCompleted).
			ShowHidden(showCompleted).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks of %s: %w", listID, err)
		}
		for _, item := range resp.Items {
			out = append(out, fromAPI(item))
		}
		if resp.NextPageToken == "" {
			return out, nil
		}
		pageToken = resp.NextPageToken
	}
}

// InsertTask creates a task at the top of the list.
func (c *Client) InsertTask(ctx context.Context, listID string, t Task) (*Task, error) {
	item := &tasks.Task{
		Title:  t.Title,
		Notes:  t.Notes,
		Status: t.Status,
	}
	if t.Due != nil {
		item.Due = formatDue(*t.Due)
	}

	created, err := c.service.Tasks.Insert(listID, item).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	res := fromAPI(created)
	return &res, nil
}

// PatchTask applies the non-nil fields of req.
func (c *Client) PatchTask(ctx context.Context, req PatchTaskRequest) (*Task, error) {
	item := &tasks.Task{}
	if req.Title != nil {
		item.Title = *req.Title
		item.ForceSendFields = append(item.ForceSendFields, "Title")
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
		item.ForceSendFields = append(item.ForceSendFields, "Notes")
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.ClearDue {
		item.NullFields = append(item.NullFields, "Due")
	} else if req.Due != nil {
		item.Due = formatDue(*req.Due)
	}

	patched, err := c.service.Tasks.Patch(req.ListID, req.TaskID, item).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch task: %w", err)
	}
	res := fromAPI(patched)
	return &res, nil
}

// MoveTask moves a task to another list.
func (c *Client) MoveTask(ctx context.Context, listID, taskID, destListID string) (*Task, error) {
	moved, err := c.service.Tasks.Move(listID, taskID).DestinationTasklist(destListID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}
	res := fromAPI(moved)
	return &res, nil
}

func fromAPI(item *tasks.Task) Task {
	t := Task{
		ID:     item.Id,
		Title:  item.Title,
		Notes:  item.Notes,
		Status: item.Status,
	}
	if due, ok := parseTime(item.Due); ok {
		due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
		t.Due = &due
	}
	if item.Completed != nil {
		if completed, ok := parseTime(*item.Completed); ok {
			t.Completed = &completed
		}
	}
	if updated, ok := parseTime(item.Updated); ok {
		t.Updated = &updated
	}
	return t
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func formatDue(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

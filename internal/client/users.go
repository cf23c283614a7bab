package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"classnotify/internal/util"
)

// UsersClient resolves user email addresses from the users service.
// Lookups are cached with a short TTL since the same users show up in
// dispatch after dispatch; a cache outage degrades to a remote read.
type UsersClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *util.Cache
}

func NewUsersClient(baseURL string, timeout time.Duration, cache *util.Cache) *UsersClient {
	return &UsersClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

func (c *UsersClient) GetUserEmail(ctx context.Context, userID string) (string, error) {
	cacheKey := "user_email:" + userID
	if c.cache != nil {
		if email, ok := c.cache.Get(ctx, cacheKey); ok {
			return email, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s", c.baseURL, userID), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("users service error: %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode user: %w", err)
	}

	if payload.Data.Email != "" && c.cache != nil {
		c.cache.Set(ctx, cacheKey, payload.Data.Email)
	}
	return payload.Data.Email, nil
}

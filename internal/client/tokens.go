package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TokensClient reads and revokes FCM device tokens held by the
// notifications token store.
type TokensClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTokensClient(baseURL string, timeout time.Duration) *TokensClient {
	return &TokensClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetUserTokens returns every registered device token of a user. A user
// with no devices gets an empty list, not an error.
func (c *TokensClient) GetUserTokens(ctx context.Context, userID string) ([]string, error) {
	reqURL := fmt.Sprintf("%s/notifications/tokens?uid=%s", c.baseURL, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token store error: %d", resp.StatusCode)
	}

	var rows []struct {
		FCMToken string `json:"fcm_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode tokens: %w", err)
	}

	tokens := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.FCMToken != "" {
			tokens = append(tokens, row.FCMToken)
		}
	}
	return tokens, nil
}

// DeleteToken asks the token store to drop an invalid token.
func (c *TokensClient) DeleteToken(ctx context.Context, token string) error {
	reqURL := fmt.Sprintf("%s/notifications/token?token=%s", c.baseURL, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("token store error: %d", resp.StatusCode)
	}
	return nil
}

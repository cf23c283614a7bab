package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"classnotify/internal/config"
)

// FCMSender submits push messages through the FCM HTTP API.
type FCMSender struct {
	url        string
	serverKey  string
	httpClient *http.Client
}

func NewFCMSender(cfg config.PushConfig, timeout time.Duration) *FCMSender {
	return &FCMSender{
		url:       cfg.URL,
		serverKey: cfg.ServerKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type fcmRequest struct {
	To           string          `json:"to"`
	Notification fcmNotification `json:"notification"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Failure int `json:"failure"`
	Results []struct {
		Error string `json:"error"`
	} `json:"results"`
}

func (s *FCMSender) Send(ctx context.Context, token, title, body string) error {
	payload, err := json.Marshal(fcmRequest{
		To: token,
		Notification: fcmNotification{
			Title: title,
			Body:  body,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.serverKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("fcm 5xx: %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fcm error: %d", resp.StatusCode)
	}

	var result fcmResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode fcm response: %w", err)
	}

	if result.Failure > 0 {
		for _, r := range result.Results {
			// NotRegistered / InvalidRegistration mean the token is dead.
			if r.Error == "NotRegistered" || r.Error == "InvalidRegistration" {
				return fmt.Errorf("%w: %s", ErrInvalidToken, r.Error)
			}
		}
		return fmt.Errorf("fcm rejected message: %+v", result.Results)
	}
	return nil
}

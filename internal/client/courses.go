package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CoursesClient reads enrollment, forum and submission data from the
// courses service.
type CoursesClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCoursesClient(baseURL string, timeout time.Duration) *CoursesClient {
	return &CoursesClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type Enrollment struct {
	StudentID string `json:"student_id"`
}

type Submission struct {
	AssignmentID string `json:"assignment_id"`
	Status       string `json:"status"`
}

// GetEnrollments fetches the roster of a course. The service answers with
// either a bare array or a {"data": [...]} wrapper depending on the gateway
// in front of it, so both shapes are accepted.
func (c *CoursesClient) GetEnrollments(ctx context.Context, courseID string) ([]Enrollment, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/courses/%s/enrollments", c.baseURL, courseID), nil)
	if err != nil {
		return nil, err
	}

	var enrollments []Enrollment
	if err := json.Unmarshal(body, &enrollments); err == nil {
		return enrollments, nil
	}

	var wrapped struct {
		Data []Enrollment `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode enrollments: %w", err)
	}
	return wrapped.Data, nil
}

// GetForumParticipants fetches the user ids that have posted in the
// course forum.
func (c *CoursesClient) GetForumParticipants(ctx context.Context, courseID string) ([]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/forum/courses/%s/participants", c.baseURL, courseID), nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Participants []string `json:"participants"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode forum participants: %w", err)
	}
	return resp.Participants, nil
}

// GetSubmissions fetches all submissions of a student. The courses service
// authorizes the read via the X-Student-UUID header.
func (c *CoursesClient) GetSubmissions(ctx context.Context, studentID string) ([]Submission, error) {
	headers := map[string]string{"X-Student-UUID": studentID}
	body, err := c.get(ctx, fmt.Sprintf("%s/students/%s/submissions", c.baseURL, studentID), headers)
	if err != nil {
		return nil, err
	}

	var submissions []Submission
	if err := json.Unmarshal(body, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}
	return submissions, nil
}

func (c *CoursesClient) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("courses service error: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

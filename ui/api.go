package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"userdesk/auth"
)

// apiClient talks to the backend from the browser. Cookies set by the login
// endpoint ride along automatically since everything is same origin.
type apiClient struct {
	http *http.Client
	base string
}

var api = &apiClient{http: http.DefaultClient}

type apiError struct {
	Status int
	Detail string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Detail)
}

func (c *apiClient) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	e := &apiError{Status: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}
	var body auth.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		e.Detail = body.Detail
	}
	return e
}

// errorText picks the message a page shows for err.
func errorText(err error, fallback string) string {
	var e *apiError
	if errors.As(err, &e) {
		return e.Detail
	}
	if err != nil {
		return fallback
	}
	return ""
}

func isUnauthorized(err error) bool {
	var e *apiError
	return errors.As(err, &e) && e.Status == http.StatusUnauthorized
}

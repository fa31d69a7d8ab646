package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Credentials: basic auth для админских ручек. Пустой Login: запрос без авторизации.
type Credentials struct {
	Login    string
	Password string
}

var client = &http.Client{Timeout: 15 * time.Second}

func do(ctx context.Context, method, url string, payload any, creds Credentials) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if creds.Login != "" {
		req.SetBasicAuth(creds.Login, creds.Password)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, data, nil
}

// GetJSON выполняет GET и возвращает ответ с прочитанным телом.
func GetJSON(ctx context.Context, url string, creds Credentials) (*http.Response, []byte, error) {
	return do(ctx, http.MethodGet, url, nil, creds)
}

// PostJSON sends a JSON POST request.
func PostJSON(ctx context.Context, url string, payload any, creds Credentials) (*http.Response, []byte, error) {
	return do(ctx, http.MethodPost, url, payload, creds)
}

// Decode проверяет ожидаемый статус и разбирает JSON-тело в out.
func Decode(resp *http.Response, body []byte, want int, out any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized: check admin login and password")
	}
	if resp.StatusCode != want {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

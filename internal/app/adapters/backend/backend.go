// Package backend wraps the game-server orchestration API: bearer-token
// authenticated JSON over HTTP under the /bot base path. HTTP outcomes are
// mapped to the sentinel errors in ports; calls are never retried here, a
// failure surfaces straight to the triggering command or poll tick.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"urtbot/internal/app/ports"
	"urtbot/pkg/logger"
)

type Client struct {
	log     logger.Logger
	client  *http.Client
	baseURL string
	token   string
}

func New(log logger.Logger, client *http.Client, apiURL, token string) *Client {
	return &Client{
		log:     log,
		client:  client,
		baseURL: strings.TrimRight(apiURL, "/") + "/bot",
		token:   token,
	}
}

// do performs one request and returns the status code plus the raw body.
// Only transport-level failures produce an error; status interpretation is
// left to the endpoint wrappers.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.log.Trace("Backend request", slog.String("method", method), slog.String("path", path))

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("backend request: %w", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if cerr := resp.Body.Close(); cerr != nil {
		c.log.Error("Failed to close response body", cerr)
	}
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}

	c.log.Trace("Backend response", slog.Int("status", resp.StatusCode), slog.String("path", path))
	return resp.StatusCode, raw, nil
}

func (c *Client) Pool(ctx context.Context, guildID string) ([]ports.ServerRecord, error) {
	status, raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/server/%s/pool", guildID), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("pool: unexpected status %d", status)
	}

	var servers []ports.ServerRecord
	if err := json.Unmarshal(raw, &servers); err != nil {
		return nil, fmt.Errorf("pool: decode response: %w", err)
	}
	return servers, nil
}

type addServerRequest struct {
	IP           string `json:"ip"`
	Port         string `json:"port"`
	RconPassword string `json:"rconpassword"`
	Region       string `json:"region,omitempty"`
}

func (c *Client) AddServer(ctx context.Context, guildID, ip, port, rconPassword, region string) error {
	status, _, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/server/%s/pool", guildID), addServerRequest{
		IP:           ip,
		Port:         port,
		RconPassword: rconPassword,
		Region:       region,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("add server: unexpected status %d", status)
	}
	return nil
}

func (c *Client) DeleteServer(ctx context.Context, guildID, id string) error {
	status, _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/server/%s/pool/%s", guildID, id), nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ports.ErrNotFound
	default:
		return fmt.Errorf("delete server: unexpected status %d", status)
	}
}

type rconRequest struct {
	Command string `json:"command"`
}

type rconResponse struct {
	Data string `json:"data"`
}

func (c *Client) Rcon(ctx context.Context, guildID, id, command string) (string, error) {
	status, raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/server/%s/pool/%s/rcon", guildID, id), rconRequest{Command: command})
	if err != nil {
		return "", err
	}
	switch status {
	case http.StatusOK:
		var resp rconResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return "", fmt.Errorf("rcon: decode response: %w", err)
		}
		return resp.Data, nil
	case http.StatusNotFound:
		return "", ports.ErrNotFound
	default:
		return "", fmt.Errorf("rcon: unexpected status %d", status)
	}
}

type requestServerRequest struct {
	UserDiscordID string `json:"userDiscordId"`
	Region        string `json:"region,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) RequestServer(ctx context.Context, guildID, userID, region string) error {
	status, raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/server/%s/request", guildID), requestServerRequest{
		UserDiscordID: userID,
		Region:        region,
	})
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusCreated {
		return nil
	}

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil {
		switch apiErr.Error {
		case "NO_SERVER_AVAILABLE":
			return ports.ErrNoServerAvailable
		case "ALREADY_REQUESTED_SERVER":
			return ports.ErrAlreadyRequested
		}
	}
	return fmt.Errorf("request server: unexpected status %d", status)
}

type stopServerRequest struct {
	UserDiscordID string `json:"userDiscordId"`
}

func (c *Client) StopServer(ctx context.Context, guildID, userID string) error {
	status, _, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/server/%s/stop", guildID), stopServerRequest{UserDiscordID: userID})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ports.ErrNotFound
	default:
		return fmt.Errorf("stop server: unexpected status %d", status)
	}
}

func (c *Client) Collect(ctx context.Context) ([]ports.ServerRecord, error) {
	status, raw, err := c.do(ctx, http.MethodGet, "/collect", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("collect: unexpected status %d", status)
	}

	var servers []ports.ServerRecord
	if err := json.Unmarshal(raw, &servers); err != nil {
		return nil, fmt.Errorf("collect: decode response: %w", err)
	}
	return servers, nil
}

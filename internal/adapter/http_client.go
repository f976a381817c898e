package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/models"
)

type httpCloudStore struct {
	client *resty.Client
	tokens TokenProvider

	logger *logger.Logger
}

// NewHTTPCloudStore constructs the HTTP/REST implementation of [CloudStore].
// It normalises and validates the base URL from cfg.Address and configures
// the underlying resty client with the resolved base URL and request
// timeout. Every request carries the bearer credential obtained from tokens.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPCloudStore(cfg config.ClientRemote, tokens TokenProvider, logger *logger.Logger) (CloudStore, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpCloudStore{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListFiles implements [CloudStore]. It GETs /api/files for the kind's
// subfolder, passing since as the incremental-listing cursor when non-empty.
func (h *httpCloudStore) ListFiles(ctx context.Context, scope models.RecordKind, since string) (FileListing, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return FileListing{}, err
	}

	req.SetQueryParam("scope", string(scope))
	if since != "" {
		req.SetQueryParam("since", since)
	}

	var listing FileListing
	resp, err := req.
		SetResult(&listing).
		Get("/api/files")
	if err != nil {
		return FileListing{}, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return FileListing{}, err
	}

	return listing, nil
}

// ReadFile implements [CloudStore]. It GETs /api/files/{id} and returns the
// raw object bytes.
func (h *httpCloudStore) ReadFile(ctx context.Context, id string) ([]byte, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/api/files/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("read file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// WriteFile implements [CloudStore]. It PUTs the object bytes under the
// given name and returns the store-assigned object info.
func (h *httpCloudStore) WriteFile(ctx context.Context, name string, data []byte) (FileInfo, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return FileInfo{}, err
	}

	var info FileInfo
	resp, err := req.
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetResult(&info).
		Put("/api/files/" + url.PathEscape(name))
	if err != nil {
		return FileInfo{}, fmt.Errorf("write file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return FileInfo{}, err
	}

	return info, nil
}

func (h *httpCloudStore) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain access token: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no authenticated session", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/models"
)

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type listSitesResponse struct {
	Sites []models.Site `json:"sites"`
}

type httpCMSClient struct {
	client       *utils.HTTPClient
	clientID     string
	clientSecret string

	logger *logger.Logger
}

// NewHTTPCMSClient builds the REST implementation of [CMSClient].
func NewHTTPCMSClient(cfg config.Adapter, logger *logger.Logger) (CMSClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdapterURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCMSClient{
		client:       client,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// ExchangeCode implements [CMSClient] with POST /oauth/access_token.
func (h *httpCMSClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     h.clientID,
			"client_secret": h.clientSecret,
			"code":          code,
			"grant_type":    "authorization_code",
		}).
		Post("/oauth/access_token")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpCMSClient.ExchangeCode").Msg("token exchange request failed")
		return "", fmt.Errorf("%w: token exchange: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var token accessTokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("%w: decode token response: %w", ErrUpstream, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: %w", ErrUpstream, ErrEmptyAccessToken)
	}

	return token.AccessToken, nil
}

// ListSites implements [CMSClient] with GET /v2/sites.
func (h *httpCMSClient) ListSites(ctx context.Context, accessToken string) ([]models.Site, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get("/v2/sites")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpCMSClient.ListSites").Msg("list sites request failed")
		return nil, fmt.Errorf("%w: list sites: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sites listSitesResponse
	if err = json.Unmarshal(resp.Body(), &sites); err != nil {
		return nil, fmt.Errorf("%w: decode sites response: %w", ErrUpstream, err)
	}

	return sites.Sites, nil
}

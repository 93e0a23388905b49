package sessions

import (
	"bytes"
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/dto/responses"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	loginPath   = "/api/v1/auth/login"
	mePath      = "/api/v1/auth/me"
	refreshPath = "/api/v1/auth/refresh"
	logoutPath  = "/api/v1/auth/logout"
)

// HTTPGateway talks to the backend auth endpoints with a cookie jar, so the
// session cookie travels automatically. On a 401 from any request it calls
// the refresh endpoint exactly once and retries the original request once;
// if that still fails it fires OnSessionExpired (the CLI clears local state,
// a browser would navigate to the login route).
type HTTPGateway struct {
	baseURL          string
	httpClient       *http.Client
	log              *zap.Logger
	onSessionExpired func()
}

func NewHTTPGateway(baseURL string, log *zap.Logger, onSessionExpired func()) contracts.AuthGateway {
	jar, _ := cookiejar.New(nil)
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		log:              log,
		onSessionExpired: onSessionExpired,
	}
}

func (g *HTTPGateway) Login(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
	var out responses.Login
	err := g.do(ctx, http.MethodPost, loginPath, &requests.Login{Identifier: identifier, Secret: secret}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (g *HTTPGateway) Me(ctx context.Context) (*models.UserProfile, error) {
	var out responses.Me
	err := g.do(ctx, http.MethodGet, mePath, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (g *HTTPGateway) Logout(ctx context.Context) error {
	return g.do(ctx, http.MethodPost, logoutPath, nil, nil)
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
	}

	resp, raw, err := g.roundTrip(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && path != refreshPath && path != loginPath {
		refreshResp, _, refreshErr := g.roundTrip(ctx, http.MethodPost, refreshPath, nil)
		if refreshErr != nil || refreshResp.StatusCode >= 400 {
			g.sessionExpired()
			return exceptions.ErrInvalidSession()
		}

		resp, raw, err = g.roundTrip(ctx, method, path, payload)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			g.sessionExpired()
			return exceptions.ErrInvalidSession()
		}
	}

	envelope := struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return exceptions.WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevBackendDecode)
		}
	}

	if resp.StatusCode >= 400 {
		message := envelope.Message
		if message == "" {
			message = constvars.ErrClientSomethingWrongWithApp
		}
		return exceptions.WrapWithoutError(resp.StatusCode, message, constvars.ErrDevBackendRequest)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return exceptions.WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevBackendDecode)
		}
	}
	return nil
}

func (g *HTTPGateway) roundTrip(ctx context.Context, method, path string, payload []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, nil, exceptions.ErrBackendRequest(err)
	}
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, nil, exceptions.ErrBackendRequest(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, exceptions.ErrBackendRequest(err)
	}
	return resp, raw, nil
}

func (g *HTTPGateway) sessionExpired() {
	g.log.Info("backend session expired after refresh attempt")
	if g.onSessionExpired != nil {
		g.onSessionExpired()
	}
}

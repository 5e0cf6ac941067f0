package strava

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/2beens/stridesync/internal/telemetry/tracing"
)

// Authenticator implements the server side of the oauth code flow:
// building the authorize URL and exchanging the callback code for a token.
type Authenticator struct {
	clientID     string
	clientSecret string
	redirectURI  string
	authorizeURL string
	tokenURL     string
	httpClient   *http.Client
}

func NewAuthenticator(
	clientID string,
	clientSecret string,
	redirectURI string,
	authorizeURL string,
	tokenURL string,
	httpClient *http.Client,
) *Authenticator {
	return &Authenticator{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authorizeURL: authorizeURL,
		tokenURL:     tokenURL,
		httpClient:   httpClient,
	}
}

// AuthCodeURL is where the user is sent to give consent
func (a *Authenticator) AuthCodeURL() string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("response_type", "code")
	params.Set("approval_prompt", "force")
	params.Set("scope", "activity:read_all")

	return fmt.Sprintf("%s?%s", a.authorizeURL, params.Encode())
}

type tokenExchangeRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	GrantType    string `json:"grant_type"`
}

// Exchange swaps the oauth callback code for a bearer token.
// Fails with ConfigError before any network call if the credentials are not set.
func (a *Authenticator) Exchange(ctx context.Context, code string) (tokenResponse *TokenResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaAuth.exchange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if a.clientID == "" {
		return nil, &ConfigError{Missing: "client id"}
	}
	if a.clientSecret == "" {
		return nil, &ConfigError{Missing: "client secret"}
	}

	reqBytes, err := json.Marshal(tokenExchangeRequest{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		Code:         code,
		GrantType:    "authorization_code",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token exchange request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("token exchange failed: %w", NewAPIError(resp.StatusCode))
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token exchange response bytes: %w", err)
	}

	tokenResponse = &TokenResponse{}
	if err := json.Unmarshal(respBytes, tokenResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token exchange response: %w", err)
	}

	return tokenResponse, nil
}

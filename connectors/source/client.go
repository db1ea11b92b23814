package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials describes how to authenticate against the survey export host.
// A token URL selects the client credentials flow, otherwise a static
// bearer token is sent when set.
type Credentials struct {
	Token        string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// CredentialsFromEnv reads SURVEY_TOKEN, SURVEY_TOKEN_URL, SURVEY_CLIENT_ID,
// SURVEY_CLIENT_SECRET and SURVEY_SCOPES (comma separated).
func CredentialsFromEnv() Credentials {
	var scopes []string
	for _, s := range strings.Split(os.Getenv("SURVEY_SCOPES"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return Credentials{
		Token:        os.Getenv("SURVEY_TOKEN"),
		TokenURL:     os.Getenv("SURVEY_TOKEN_URL"),
		ClientID:     os.Getenv("SURVEY_CLIENT_ID"),
		ClientSecret: os.Getenv("SURVEY_CLIENT_SECRET"),
		Scopes:       scopes,
	}
}

// Client downloads survey exports over HTTP
type Client struct {
	httpClient *http.Client
}

// NewClient builds a client for the given credentials. ctx scopes token
// acquisition for the client credentials flow.
func NewClient(ctx context.Context, creds Credentials) *Client {
	base := &http.Client{Timeout: 30 * time.Second}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	var hc *http.Client
	switch {
	case creds.TokenURL != "":
		cc := clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     creds.TokenURL,
			Scopes:       creds.Scopes,
		}
		hc = cc.Client(ctx)
	case creds.Token != "":
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token}))
	default:
		hc = base
	}
	hc.Timeout = base.Timeout
	return &Client{httpClient: hc}
}

// Fetch returns the body of url. Any non-2xx answer is an error carrying a
// short excerpt of the response.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch %s failed: %d %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return b, nil
}

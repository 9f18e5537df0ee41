package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// TokenFile is the default location of the OAuth Desktop App token.
const TokenFile = "token.json"

var (
	ErrUnsupportedCredentials = errors.New("gcalendar: credentials are neither a service account nor an OAuth client")
	ErrTokenMissing           = errors.New("gcalendar: OAuth client credentials need a token; run suggestctl calendar-auth")
)

// Config locates the credentials used to reach the Calendar API.
type Config struct {
	CredentialsPath string // service account key or OAuth Desktop App client
	TokenPath       string // OAuth token; defaults to TokenFile
}

// tokenSource prefers a service account key and falls back to an OAuth
// client plus a previously saved token.
func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	oauthCfg, err := OAuthConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return oauthCfg.TokenSource(ctx, tok), nil
}

// OAuthConfig parses OAuth client credentials ("installed" or "web").
func OAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}
	return cfg, nil
}

// LoadToken reads a token written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = TokenFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrTokenMissing
	}
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = TokenFile
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("gcalendar: create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("gcalendar: write token: %w", err)
	}
	return nil
}

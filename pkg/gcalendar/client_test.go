package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"task-suggestion-service/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{Transport: hc.Transport, Host: strings.TrimPrefix(ts.URL, "http://")}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewClientFromHTTP: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	creds := writeFile(t, dir, "creds.json", installedCreds)
	goodToken := writeFile(t, dir, "good.json", `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`)
	badToken := writeFile(t, dir, "bad.json", `{"broken": true`)
	broken := writeFile(t, dir, "broken.json", `{"broken":true}`)

	tests := []struct {
		name    string
		cfg     gcalendar.Config
		wantErr error
		anyErr  bool
	}{
		{"OAuth client with token", gcalendar.Config{CredentialsPath: creds, TokenPath: goodToken}, nil, false},
		{"OAuth client without token", gcalendar.Config{CredentialsPath: creds, TokenPath: filepath.Join(dir, "missing.json")}, gcalendar.ErrTokenMissing, true},
		{"OAuth client bad token", gcalendar.Config{CredentialsPath: creds, TokenPath: badToken}, nil, true},
		{"Unsupported credentials", gcalendar.Config{CredentialsPath: broken}, gcalendar.ErrUnsupportedCredentials, true},
		{"Missing credentials file", gcalendar.Config{CredentialsPath: filepath.Join(dir, "nope.json")}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gcalendar.New(context.Background(), tt.cfg)
			if (err != nil) != tt.anyErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.anyErr)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	want := &oauth2.Token{AccessToken: "abc", TokenType: "Bearer", RefreshToken: "r"}

	if err := gcalendar.SaveToken(path, want); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600, got %v", info.Mode().Perm())
	}

	got, err := gcalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken {
		t.Errorf("unexpected token: %+v", got)
	}
}

func TestOAuthConfig(t *testing.T) {
	cfg, err := gcalendar.OAuthConfig([]byte(installedCreds))
	if err != nil {
		t.Fatalf("OAuthConfig: %v", err)
	}
	if cfg.ClientID != "test-client-id.apps.googleusercontent.com" {
		t.Errorf("unexpected client id %q", cfg.ClientID)
	}
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2024, 6, 10, 8, 22, 0, 0, time.FixedZone("EDT", -4*3600))

	t.Run("Inserts event with recurrence", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/work/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			w.Write([]byte(`{"id":"event-123","summary":"Morning run","htmlLink":"https://calendar.google.com/event-uri"}`))
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "work",
			Summary:    "Morning run",
			StartTime:  start,
			EndTime:    start.Add(30 * time.Minute),
			Timezone:   "America/New_York",
			Recurrence: []string{"RRULE:FREQ=DAILY;COUNT=3"},
			ColorID:    "2",
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}
		if body["colorId"] != "2" {
			t.Errorf("expected colorId 2, got %v", body["colorId"])
		}
		startField, _ := body["start"].(map[string]any)
		if startField["dateTime"] != "2024-06-10T08:22:00-04:00" || startField["timeZone"] != "America/New_York" {
			t.Errorf("unexpected start: %v", startField)
		}
	})

	t.Run("Defaults to primary calendar", func(t *testing.T) {
		var path string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Write([]byte(`{"id":"e"}`))
		})
		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: start, EndTime: start.Add(time.Hour)}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		if path != "/calendar/v3/calendars/primary/events" {
			t.Errorf("unexpected path %s", path)
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: start, EndTime: start.Add(time.Hour)})
		if err == nil {
			t.Fatal("expected create event error")
		}
	})

	t.Run("Rejects empty window", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: start, EndTime: start})
		if !errors.Is(err, gcalendar.ErrInvalidWindow) {
			t.Errorf("expected ErrInvalidWindow, got %v", err)
		}
		if calls != 0 {
			t.Error("API must not be called for an invalid window")
		}
	})
}

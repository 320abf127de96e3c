package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// newFakeSlack serves the listing and history endpoints the exporter uses
func newFakeSlack(t *testing.T) *httptest.Server {
	t.Helper()

	ts := strconv.FormatInt(time.Now().Unix(), 10) + ".000100"
	handlers := map[string]any{
		"/conversations.list": map[string]any{
			"ok": true,
			"channels": []map[string]any{
				{"id": "C000000001", "name": "general"},
				{"id": "C000000002", "name": "secret", "is_private": true},
			},
			"response_metadata": map[string]string{"next_cursor": ""},
		},
		"/users.list": map[string]any{
			"ok":                true,
			"members":           []map[string]any{{"id": "U1", "name": "alice"}},
			"response_metadata": map[string]string{"next_cursor": ""},
		},
		"/conversations.history": map[string]any{
			"ok": true,
			"messages": []map[string]any{
				{"type": "message", "user": "U1", "text": "hello", "ts": ts},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, ok := handlers[r.URL.Path]
		if !ok {
			http.Error(w, "not found: "+r.URL.Path, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SLACK_TOKEN", "SLACK_COOKIE", "SLACK_API_URL", "SLACK_LOG_CONFIG",
		"SLACK_LOG_CHANNELS", "SLACK_LOG_DAYS_BEFORE", "SLACK_LOG_SEND_DM_USER",
		"SLACK_LOG_OUTPUT_DIR", "SLACK_LOG_RETRY_RATE_LIMITED", "LOG_LEVEL", "SLACK_LOG_LOG_DIR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRun_ExportWritesChannelLog(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	dir := t.TempDir()

	err := run(context.Background(), []string{
		"slack-log-export", "export",
		"--token", "xoxb-test",
		"--api-url", srv.URL + "/",
		"--channel", "general",
		"--days-before", "0",
		"--output-dir", dir,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "general.log"))
	if err != nil {
		t.Fatalf("expected general.log: %v", err)
	}
	if !strings.HasPrefix(string(data), "\nalice:") {
		t.Errorf("log should start with the author line, got %q", data)
	}
	if !strings.HasSuffix(string(data), "\nhello\n") {
		t.Errorf("log should end with the message text, got %q", data)
	}
}

func TestRun_ExportUnknownChannelFails(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	dir := t.TempDir()

	err := run(context.Background(), []string{
		"slack-log-export", "export",
		"--token", "xoxb-test",
		"--api-url", srv.URL + "/",
		"--channel", "missing",
		"--output-dir", dir,
	}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for unknown channel")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "missing.log")); !os.IsNotExist(statErr) {
		t.Errorf("no log file should be written, stat err: %v", statErr)
	}
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestRun_DefaultCommandAcceptsFlags(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	dir := t.TempDir()

	err := run(context.Background(), []string{
		"slack-log-export",
		"--token", "xoxb-test",
		"--api-url", srv.URL + "/",
		"--channel", "general",
		"--days-before", "0",
		"--output-dir", dir,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "general.log")); err != nil {
		t.Errorf("expected general.log from the default command: %v", err)
	}
}

func TestRun_ExportReadsSettingsFile(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	dir := t.TempDir()
	settings := writeSettings(t, "channels:\n  - general\ndays_before: 0\noutput_dir: "+dir+"\n")

	err := run(context.Background(), []string{
		"slack-log-export", "export",
		"--token", "xoxb-test",
		"--api-url", srv.URL + "/",
		"--config", settings,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "general.log")); err != nil {
		t.Errorf("expected general.log in the settings output dir: %v", err)
	}
}

func TestRun_ChannelsListsDirectory(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{
		"slack-log-export", "channels",
		"--token", "xoxb-test",
		"--api-url", srv.URL + "/",
		"--output-dir", t.TempDir(),
	}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "C000000001\tgeneral\nC000000002\tsecret private\n"
	if out.String() != want {
		t.Errorf("output: got %q, want %q", out.String(), want)
	}
}

func TestRun_ChannelsUsesSettingsOutputDir(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	dir := filepath.Join(t.TempDir(), "logs")
	settings := writeSettings(t, "output_dir: "+dir+"\n")

	err := run(context.Background(), []string{
		"slack-log-export", "channels",
		"--token", "xoxb-test",
		"--api-url", srv.URL + "/",
		"--config", settings,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected output dir from settings to be created: %v", err)
	}
}

func TestRun_ServeUsesSettingsOutputDir(t *testing.T) {
	clearEnv(t)
	srv := newFakeSlack(t)
	dir := filepath.Join(t.TempDir(), "logs")
	settings := writeSettings(t, "output_dir: "+dir+"\n")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	prev := serveTransport
	serveTransport = func() mcp.Transport { return serverTransport }
	t.Cleanup(func() { serveTransport = prev })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, []string{
			"slack-log-export", "serve",
			"--token", "xoxb-test",
			"--api-url", srv.URL + "/",
			"--config", settings,
		}, &bytes.Buffer{})
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client.Connect failed: %v", err)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "slack_export_channel_log",
		Arguments: map[string]any{"channel": "general"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool reported an error: %+v", result.Content)
	}

	session.Close()
	cancel()
	<-done

	if _, err := os.Stat(filepath.Join(dir, "general.log")); err != nil {
		t.Errorf("expected general.log in the settings output dir: %v", err)
	}
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing token",
			args: []string{"slack-log-export", "export", "--channel", "general"},
		},
		{
			name: "missing channel",
			args: []string{"slack-log-export", "export", "--token", "xoxb-test"},
		},
		{
			name: "negative days",
			args: []string{"slack-log-export", "export", "--token", "xoxb-test", "--channel", "general", "--days-before=-1"},
		},
		{
			name: "send without user",
			args: []string{"slack-log-export", "send", "--token", "xoxb-test", "--channel", "general"},
		},
		{
			name: "bad log level",
			args: []string{"slack-log-export", "--log-level", "verbose", "export"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if err := run(context.Background(), tt.args, &bytes.Buffer{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

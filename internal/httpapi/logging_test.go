package httpapi

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("POST", "/start?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("POST", "/start", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	SetDefaultLogLevel("info")
	defer SetDefaultLogLevel("")
	r = httptest.NewRequest("POST", "/start", nil)
	if got := requestLogLevel(r); got != LevelInfo {
		t.Fatalf("default level not applied: %v", got)
	}
}

func TestLogRequest_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer func() { zlog = nil }()

	r := httptest.NewRequest("POST", "/stop", nil)
	logRequest(r, LevelInfo, "stop", 200, time.Millisecond, nil)
	logRequest(r, LevelError, "stop", 500, time.Millisecond, errors.New("boom"))
	logRequest(r, LevelError, "stop", 200, time.Millisecond, nil) // below info, dropped
	logRequest(r, LevelOff, "stop", 500, time.Millisecond, errors.New("x"))

	out := buf.String()
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected 2 log lines, got: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"error":"boom"`) || !strings.Contains(out, `"status":500`) {
		t.Fatalf("error line missing fields: %s", out)
	}
}

func TestLogRequest_StdlibFallback(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	zlog = nil

	logRequest(httptest.NewRequest("POST", "/start", nil), LevelInfo, "start", 200, time.Millisecond, nil)
	if !strings.Contains(buf.String(), "start end status=200") {
		t.Fatalf("unexpected fallback output: %q", buf.String())
	}
}

package updater

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		tag  string
		want []int
	}{
		{"1.2.3", []int{1, 2, 3}},
		{"v1.2.3", []int{1, 2, 3}},
		{"V2.0", []int{2, 0}},
		{" v1.10.0 ", []int{1, 10, 0}},
		{"garbage", []int{0}},
		{"1.x.3", []int{0}},
		{"", []int{0}},
	}
	for _, c := range cases {
		got := parseVersion(c.tag)
		if len(got) != len(c.want) {
			t.Fatalf("parseVersion(%q) = %v, want %v", c.tag, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("parseVersion(%q) = %v, want %v", c.tag, got, c.want)
			}
		}
	}
}

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.3.0", "1.2.9", 1},
		{"1.2.3", "1.3.0", -1},
		{"1.2.3.1", "1.2.3", 1},
		{"1.2", "1.2.0", 0},
		{"2", "1.9.9", 1},
	}
	for _, c := range cases {
		got := compareVersions(parseVersion(c.a), parseVersion(c.b))
		if got != c.want {
			t.Fatalf("compare(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func waitResult(t *testing.T, checker *Checker, version string) Result {
	t.Helper()
	resultCh := make(chan Result, 1)
	checker.Check(version, func(r Result) { resultCh <- r })
	select {
	case r := <-resultCh:
		return r
	case <-time.After(5 * time.Second):
		t.Fatalf("update check timed out")
		return Result{}
	}
}

func TestCheckReportsNewerRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "SlickClick-UpdateChecker" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte(`{"tag_name": "v1.3.0", "html_url": "https://example.com/release"}`))
	}))
	defer server.Close()

	r := waitResult(t, NewCheckerFor(server.URL, server.Client(), nopLogger{}), "1.2.3")
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.UpToDate {
		t.Fatalf("expected update, got up to date")
	}
	if r.Latest != "1.3.0" || r.URL != "https://example.com/release" {
		t.Fatalf("result = %+v", r)
	}
}

func TestCheckReportsUpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.2.3", "html_url": "https://example.com"}`))
	}))
	defer server.Close()

	r := waitResult(t, NewCheckerFor(server.URL, server.Client(), nopLogger{}), "1.2.3")
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if !r.UpToDate {
		t.Fatalf("expected up to date, got %+v", r)
	}
}

func TestCheckOlderRemoteIsUpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.0.0"}`))
	}))
	defer server.Close()

	r := waitResult(t, NewCheckerFor(server.URL, server.Client(), nopLogger{}), "1.2.3")
	if !r.UpToDate {
		t.Fatalf("older remote reported as update: %+v", r)
	}
}

func TestCheckServerErrorReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := waitResult(t, NewCheckerFor(server.URL, server.Client(), nopLogger{}), "1.2.3")
	if r.Err == nil {
		t.Fatalf("expected error, got %+v", r)
	}
}

func TestCheckMalformedBodyReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	r := waitResult(t, NewCheckerFor(server.URL, server.Client(), nopLogger{}), "1.2.3")
	if r.Err == nil {
		t.Fatalf("expected error, got %+v", r)
	}
}

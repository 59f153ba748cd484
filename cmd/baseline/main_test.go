package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newReleasesServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/releases" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootResolvesAndWritesFile(t *testing.T) {
	srv := newReleasesServer(t, `[
		{"tag_name":"v1.0.0"},
		{"tag_name":"v1.1.0"},
		{"tag_name":"v2.0.0"},
		{"tag_name":"v1.5.0","draft":true},
		{"tag_name":"2.0.0-rc1"}
	]`)
	output := filepath.Join(t.TempDir(), "previous-version.txt")

	stdout, err := runCommand(t,
		"--slug", "owner/repo",
		"--api-url", srv.URL,
		"--current-version", "2.0.1-SNAPSHOT",
		"--output", output,
		"--config", filepath.Join(t.TempDir(), "absent.yml"),
	)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stdout)
	}

	if !strings.Contains(stdout, "2.0.0") {
		t.Errorf("stdout = %q, want resolved version printed", stdout)
	}
	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if string(content) != "2.0.0" {
		t.Errorf("output file content = %q, want %q", content, "2.0.0")
	}
}

func TestRootFailsWhenNoPreviousVersion(t *testing.T) {
	srv := newReleasesServer(t, `[{"tag_name":"v3.0.0"}]`)
	output := filepath.Join(t.TempDir(), "previous-version.txt")

	_, err := runCommand(t,
		"--slug", "owner/repo",
		"--api-url", srv.URL,
		"--current-version", "1.0.0",
		"--output", output,
		"--config", filepath.Join(t.TempDir(), "absent.yml"),
	)
	if err == nil {
		t.Fatal("expected error when no release is below the current version")
	}
	if !strings.Contains(err.Error(), "1.0.0") {
		t.Errorf("error = %q, want the current version named", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("output file must not be written on failure")
	}
}

func TestRootReadsCurrentVersionFromFile(t *testing.T) {
	srv := newReleasesServer(t, `[{"tag_name":"v2.9.0"},{"tag_name":"v3.0.0"}]`)
	dir := t.TempDir()

	versionFile := filepath.Join(dir, "gradle.properties")
	if err := os.WriteFile(versionFile, []byte("version=3.0.0-SNAPSHOT\n"), 0644); err != nil {
		t.Fatalf("write version file: %v", err)
	}
	output := filepath.Join(dir, "previous-version.txt")

	_, err := runCommand(t,
		"--slug", "owner/repo",
		"--api-url", srv.URL,
		"--version-file", versionFile,
		"--output", output,
		"--config", filepath.Join(dir, "absent.yml"),
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if string(content) != "2.9.0" {
		t.Errorf("output file content = %q, want %q", content, "2.9.0")
	}
}

func TestListReportsCandidates(t *testing.T) {
	srv := newReleasesServer(t, `[
		{"tag_name":"v1.0.0"},
		{"tag_name":"v1.1.0-beta","prerelease":true}
	]`)

	stdout, err := runCommand(t, "list",
		"--slug", "owner/repo",
		"--api-url", srv.URL,
		"--config", filepath.Join(t.TempDir(), "absent.yml"),
	)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "v1.0.0") || !strings.Contains(stdout, "excluded: prerelease") {
		t.Errorf("list output missing expected rows:\n%s", stdout)
	}
}

func TestCacheKeyPrintsSlugAndEpoch(t *testing.T) {
	stdout, err := runCommand(t, "cache-key",
		"--slug", "/owner/repo/",
		"--config", filepath.Join(t.TempDir(), "absent.yml"),
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(stdout, "owner/repo@") {
		t.Errorf("cache-key output = %q, want owner/repo@<epoch>", stdout)
	}
}

func TestRootRequiresSlug(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")
	_, err := runCommand(t,
		"--current-version", "1.0.0",
		"--config", filepath.Join(t.TempDir(), "absent.yml"),
	)
	if err == nil || !strings.Contains(err.Error(), "slug") {
		t.Errorf("err = %v, want missing-slug error", err)
	}
}

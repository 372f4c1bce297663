package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scalameta/docsite/internal/errors"
	"github.com/scalameta/docsite/pkg/vdom"
)

const siteConfigJSON = `{
  "title": "Proj",
  "baseUrl": "/site/",
  "footerIcon": "/img/logo.png",
  "copyright": "© 2024 Proj",
  "colors": {"primaryColor": "#111", "secondaryColor": "#222"},
  "gitterUrl": "https://gitter.im/x",
  "repoUrl": "https://github.com/x"
}`

const wantFragment = `<footer class="nav-footer" id="footer" style="background-color: #222"><section class="sitemap"><a class="nav-home" href="/site/"><img alt="Proj" height="58" src="/site//img/logo.png" width="66"></a><div><h5>Docs</h5><a href="/site/docs/trees/guide.html">Trees Guide</a><a href="/site/docs/trees/quasiquotes.html">Quasiquotes</a><a href="/site/docs/semanticdb/specification.html">SemanticDB</a></div><div><h5>Community</h5><a href="https://gitter.im/x" rel="noopener noreferrer" target="_blank">Chat on Gitter</a></div><div><h5>More</h5><a href="https://github.com/x" rel="noopener noreferrer" target="_blank">GitHub</a></div></section><section class="copyright">© 2024 Proj</section></footer>`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "siteConfig.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFooterCommand(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)

	out, err := run(t, "footer", "--config", dir)
	if err != nil {
		t.Fatalf("footer: %v", err)
	}
	if out != wantFragment+"\n" {
		t.Errorf("got %s\nwant %s", out, wantFragment)
	}
}

func TestFooterCommandPage(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)

	out, err := run(t, "footer", "--config", filepath.Join(dir, "siteConfig.json"), "--page")
	if err != nil {
		t.Fatalf("footer --page: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") || !strings.Contains(out, "<title>Proj</title>") {
		t.Errorf("expected a full page, got %s", out)
	}
	if !strings.Contains(out, "<body>"+wantFragment+"</body>") {
		t.Errorf("page body should be the footer: %s", out)
	}
}

func TestFooterCommandJSON(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)

	out, err := run(t, "footer", "--config", dir, "--json", "--pretty")
	if err != nil {
		t.Fatalf("footer --json: %v", err)
	}
	var node vdom.VNode
	if err := json.Unmarshal([]byte(out), &node); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if node.Tag != "footer" || node.AttrString("id") != "footer" {
		t.Errorf("root = <%s id=%q>", node.Tag, node.AttrString("id"))
	}
}

func TestFooterCommandOutputFile(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)
	path := filepath.Join(t.TempDir(), "footer.html")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "footer", "--config", dir, "--output", path)
	if err != nil {
		t.Fatalf("footer --output: %v", err)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != wantFragment+"\n" {
		t.Errorf("file = %s", data)
	}
}

func TestFooterCommandOutputDirMissing(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)

	_, err := run(t, "footer", "--config", dir, "--output", filepath.Join(dir, "missing", "footer.html"))
	if !stderrors.Is(err, errors.New("E401")) {
		t.Errorf("err = %v, want E401", err)
	}
}

func TestFooterCommandInvalidConfig(t *testing.T) {
	dir := writeConfig(t, `{"title": "Proj"}`)

	_, err := run(t, "footer", "--config", dir)
	if !stderrors.Is(err, errors.New("E122")) {
		t.Errorf("err = %v, want E122", err)
	}
}

func TestFooterCommandPageAndJSONExclusive(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)

	if _, err := run(t, "footer", "--config", dir, "--page", "--json"); err == nil {
		t.Error("expected --page and --json to conflict")
	}
}

func TestValidateCommand(t *testing.T) {
	dir := writeConfig(t, `{"title": "Proj", "colors": {"secondaryColor": "#222"}}`)

	out, err := run(t, "validate", "--config", dir)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "no logo") || !strings.Contains(out, "Community links are incomplete") {
		t.Errorf("expected hints for missing optional fields, got %q", out)
	}
}

func TestValidateCommandMissingConfig(t *testing.T) {
	_, err := run(t, "validate", "--config", filepath.Join(t.TempDir(), "nope"))
	if !stderrors.Is(err, errors.New("E141")) {
		t.Errorf("err = %v, want E141", err)
	}
}

func TestPublishCommandRequiresBucket(t *testing.T) {
	dir := writeConfig(t, siteConfigJSON)

	_, err := run(t, "publish", "--config", dir)
	if !stderrors.Is(err, errors.New("E301")) {
		t.Errorf("err = %v, want E301", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("version = %q", out)
	}

	out, _ = run(t, "version")
	if !strings.Contains(out, "Go version:") {
		t.Errorf("full version output = %q", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "version"); err == nil {
		t.Error("expected an invalid log level to fail")
	}
}

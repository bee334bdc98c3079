package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"nanoclaw-bridges/internal/bookmark"
	"nanoclaw-bridges/internal/bookmark/usecase"
	pkgLog "nanoclaw-bridges/pkg/log"
	"nanoclaw-bridges/pkg/sprite"
)

// fakeRunner answers "bash -c" and "cat" invocations of the sprite CLI.
type fakeRunner struct {
	execOut  sprite.Result
	files    map[string]string
	commands []string
	cats     []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (sprite.Result, error) {
	// args: -o org -s sandbox exec ...
	rest := args[5:]
	switch rest[0] {
	case "bash":
		f.commands = append(f.commands, rest[2])
		return f.execOut, nil
	case "cat":
		f.cats = append(f.cats, rest[1])
		content, ok := f.files[rest[1]]
		if !ok {
			return sprite.Result{Stderr: "cat: " + rest[1] + ": No such file or directory", ExitCode: 1}, nil
		}
		return sprite.Result{Stdout: content}, nil
	}
	return sprite.Result{}, errors.New("unexpected command")
}

func newUseCase(t *testing.T, r *fakeRunner) (bookmark.UseCase, string) {
	t.Helper()
	dir := t.TempDir()
	client := sprite.New(sprite.Config{Bin: "sprite", Org: "org", Sandbox: "box"}, r)
	uc := usecase.New(pkgLog.NewNop(), client, bookmark.Config{
		ExtractorURL: "http://localhost:8080",
		VaultRoot:    "/home/sprite/vault",
		MetaDir:      "agents/curator/extractions/.meta",
		IntakeDir:    dir,
	})
	return uc, dir
}

var b64Pattern = regexp.MustCompile(`^echo (\S+) \| base64 -d \| curl -s -X POST http://localhost:8080/intake `)

func forwardedBody(t *testing.T, cmd string) string {
	t.Helper()
	m := b64Pattern.FindStringSubmatch(cmd)
	if m == nil {
		t.Fatalf("unexpected forward command %q", cmd)
	}
	raw, err := base64.StdEncoding.DecodeString(m[1])
	if err != nil {
		t.Fatalf("bad base64 in command: %v", err)
	}
	return string(raw)
}

func TestIntakeForwardsBodyVerbatim(t *testing.T) {
	bodies := []string{
		`{"url":"https://example.com/a"}`,
		`{ "url" : "https://example.com/?q=it's \"quoted\"", "tags": ["x", "y"], "n": 12345678901234567890 }`,
		"{\"url\":\"https://例え.jp\",\n\"note\":\"$(rm -rf /) `whoami`\"}",
	}

	for _, body := range bodies {
		r := &fakeRunner{execOut: sprite.Result{Stdout: `{"status":"duplicate"}`}}
		uc, _ := newUseCase(t, r)

		if _, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(body)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.commands) != 1 {
			t.Fatalf("expected one forward, got %d", len(r.commands))
		}
		if got := forwardedBody(t, r.commands[0]); got != body {
			t.Errorf("forwarded body mismatch:\n got %q\nwant %q", got, body)
		}
	}
}

func TestIntakeValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"Empty body", "", bookmark.ErrMissingURL},
		{"Whitespace body", " \n\t", bookmark.ErrInvalidJSON},
		{"No url", `{"title":"x"}`, bookmark.ErrMissingURL},
		{"Array body", `["url"]`, bookmark.ErrMissingURL},
		{"Invalid JSON", `{"url":`, bookmark.ErrInvalidJSON},
		{"Trailing garbage", `{"url":"x"} nope`, bookmark.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{}
			uc, _ := newUseCase(t, r)

			_, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(tt.body)})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(r.commands) != 0 {
				t.Errorf("invalid input must not be forwarded")
			}
		})
	}
}

func TestIntakeNotCreated(t *testing.T) {
	for _, out := range []string{
		`{"status":"duplicate","file_path":"agents/curator/extractions/a.md"}`,
		`{"status":"error","error":"fetch failed"}`,
		`{"status":"created"}`,
		`{"status":"created","file_path":""}`,
	} {
		r := &fakeRunner{execOut: sprite.Result{Stdout: out}}
		uc, _ := newUseCase(t, r)

		res, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(`{"url":"u"}`)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.cats) != 0 {
			t.Errorf("%s: no pull-back expected, got cats %v", out, r.cats)
		}
		if _, ok := res.Result[bookmark.KeySynced]; ok {
			t.Errorf("%s: synced_to_jibrain must not be set", out)
		}
	}
}

func TestIntakePullBack(t *testing.T) {
	r := &fakeRunner{
		execOut: sprite.Result{Stdout: `{"status":"created","file_path":"agents/curator/extractions/some-article.md","words":1200}`},
		files: map[string]string{
			"/home/sprite/vault/agents/curator/extractions/some-article.md":         "# Some article\n",
			"/home/sprite/vault/agents/curator/extractions/.meta/some-article.json": `{"source":"x"}`,
		},
	}
	uc, dir := newUseCase(t, r)

	res, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(`{"url":"u"}`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result[bookmark.KeySynced] != true {
		t.Errorf("expected synced_to_jibrain true, got %v", res.Result)
	}
	if _, ok := res.Result[bookmark.KeySyncError]; ok {
		t.Errorf("sync_error must be absent on success")
	}
	if res.Result["words"].(interface{ String() string }).String() != "1200" {
		t.Errorf("numbers should be preserved, got %v", res.Result["words"])
	}

	data, err := os.ReadFile(filepath.Join(dir, "some-article.md"))
	if err != nil || string(data) != "# Some article\n" {
		t.Errorf("extraction not written: %q %v", data, err)
	}
	meta, err := os.ReadFile(filepath.Join(dir, ".meta", "some-article.json"))
	if err != nil || string(meta) != `{"source":"x"}` {
		t.Errorf("metadata not written: %q %v", meta, err)
	}
}

func TestIntakePullBackWithoutMetadata(t *testing.T) {
	r := &fakeRunner{
		execOut: sprite.Result{Stdout: `{"status":"created","file_path":"notes/b.md"}`},
		files:   map[string]string{"/home/sprite/vault/notes/b.md": "b"},
	}
	uc, dir := newUseCase(t, r)

	res, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(`{"url":"u"}`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result[bookmark.KeySynced] != true {
		t.Errorf("missing metadata must not fail the sync: %v", res.Result)
	}
	if _, err := os.Stat(filepath.Join(dir, ".meta")); !os.IsNotExist(err) {
		t.Errorf(".meta should not be created without metadata")
	}
}

func TestIntakePullBackFailure(t *testing.T) {
	r := &fakeRunner{
		execOut: sprite.Result{Stdout: `{"status":"created","file_path":"agents/curator/extractions/gone.md"}`},
	}
	uc, _ := newUseCase(t, r)

	res, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(`{"url":"u"}`)})
	if err != nil {
		t.Fatalf("pull-back failure must not fail the request: %v", err)
	}
	if res.Result[bookmark.KeySynced] != false {
		t.Errorf("expected synced_to_jibrain false, got %v", res.Result[bookmark.KeySynced])
	}
	msg, _ := res.Result[bookmark.KeySyncError].(string)
	if msg == "" || !strings.Contains(msg, "gone.md") {
		t.Errorf("expected non-empty sync_error, got %q", msg)
	}
}

func TestIntakeRemoteFailure(t *testing.T) {
	t.Run("Exec error", func(t *testing.T) {
		r := &fakeRunner{execOut: sprite.Result{Stderr: "sandbox asleep", ExitCode: 1}}
		uc, _ := newUseCase(t, r)

		_, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(`{"url":"u"}`)})
		if err == nil || err.Error() != "sandbox asleep" {
			t.Fatalf("expected sandbox error, got %v", err)
		}
	})

	t.Run("Non JSON output", func(t *testing.T) {
		r := &fakeRunner{execOut: sprite.Result{Stdout: "<html>502</html>"}}
		uc, _ := newUseCase(t, r)

		_, err := uc.Intake(context.Background(), bookmark.IntakeInput{Body: []byte(`{"url":"u"}`)})
		if err == nil || errors.Is(err, bookmark.ErrInvalidJSON) {
			t.Fatalf("expected remote decode error distinct from input errors, got %v", err)
		}
	})
}

func TestProxy(t *testing.T) {
	r := &fakeRunner{execOut: sprite.Result{Stdout: `[{"title":"a"}]`}}
	uc, _ := newUseCase(t, r)

	out, err := uc.Recent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `[{"title":"a"}]` {
		t.Errorf("unexpected body %s", out)
	}
	if r.commands[0] != "curl -s http://localhost:8080/recent" {
		t.Errorf("unexpected command %q", r.commands[0])
	}

	r.execOut = sprite.Result{Stdout: "not json"}
	if _, err := uc.Health(context.Background()); err == nil {
		t.Errorf("expected invalid JSON error")
	}
	if r.commands[1] != "curl -s http://localhost:8080/health" {
		t.Errorf("unexpected command %q", r.commands[1])
	}
}

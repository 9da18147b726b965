package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"github.com/YellowKidokc/File-Organization/internal/services"
)

func TestOrganizeDryRunListsPlannedMoves(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")
	writeScratchFile(t, filepath.Join(env.root, "notes", "b.txt"), "text")
	writeScratchFile(t, filepath.Join(env.root, "script.py"), "print()")

	stdout, _, err := runCLI(t, []string{env.root}, env.configPath)
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	requireContains(t, stdout, "Planned moves:")
	requireContains(t, stdout, filepath.Join(env.root, "a.png")+" -> "+filepath.Join(env.root, "Images", "a.png"))
	requireContains(t, stdout, filepath.Join(env.root, "notes", "b.txt")+" -> "+filepath.Join(env.root, "Documents", "b.txt"))
	requireContains(t, stdout, filepath.Join(env.root, "script.py")+" -> "+filepath.Join(env.root, "Code", "script.py"))

	first := strings.Index(stdout, "a.png ->")
	second := strings.Index(stdout, "b.txt ->")
	third := strings.Index(stdout, "script.py ->")
	if first < 0 || second < first || third < second {
		t.Fatalf("moves out of traversal order:\n%s", stdout)
	}

	if _, err := os.Stat(filepath.Join(env.root, "a.png")); err != nil {
		t.Fatalf("dry run moved a file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.root, "Images")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run created a category directory: %v", err)
	}
}

func TestOrganizeEmptyTreeReportsNoMoves(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{env.root}, env.configPath)
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if stdout != "no moves required\n" {
		t.Fatalf("expected exact empty-plan message, got %q", stdout)
	}
}

func TestOrganizeApplyMovesFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")
	writeScratchFile(t, filepath.Join(env.root, "b.txt"), "text")

	stdout, _, err := runCLI(t, []string{"--apply", env.root}, env.configPath)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	requireContains(t, stdout, "moved "+filepath.Join(env.root, "a.png"))
	requireContains(t, stdout, "moved "+filepath.Join(env.root, "b.txt"))
	requireContains(t, stdout, "Applied 2 moves")

	moved, err := os.ReadFile(filepath.Join(env.root, "Images", "a.png"))
	if err != nil || string(moved) != "image" {
		t.Fatalf("a.png not moved: %v %q", err, moved)
	}
	if _, err := os.Stat(filepath.Join(env.root, "a.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("source still present after apply: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.root, "Documents", "b.txt")); err != nil {
		t.Fatalf("b.txt not moved: %v", err)
	}
}

func TestOrganizeApplyTwiceIsIdempotent(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")

	if _, _, err := runCLI(t, []string{"--apply", env.root}, env.configPath); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	stdout, _, err := runCLI(t, []string{"--apply", env.root}, env.configPath)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if stdout != "no moves required\n" {
		t.Fatalf("expected idempotent second apply, got %q", stdout)
	}
}

func TestOrganizeExcludeSkipsNamedEntries(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "keep.txt"), "keep")
	writeScratchFile(t, filepath.Join(env.root, "skipdir", "hidden.txt"), "skip")
	writeScratchFile(t, filepath.Join(env.root, "skip.log"), "skip")

	stdout, _, err := runCLI(t, []string{"--exclude", "skipdir", "-e", "skip.log", env.root}, env.configPath)
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	requireContains(t, stdout, "keep.txt")
	if strings.Contains(stdout, "skipdir") {
		t.Fatalf("excluded directory still planned:\n%s", stdout)
	}
	if strings.Contains(stdout, "skip.log") {
		t.Fatalf("excluded file still planned:\n%s", stdout)
	}
}

func TestOrganizeCollisionFailsBeforeMoving(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a", "report.txt"), "one")
	writeScratchFile(t, filepath.Join(env.root, "b", "report.txt"), "two")

	_, _, err := runCLI(t, []string{"--apply", env.root}, env.configPath)
	if err == nil {
		t.Fatal("expected collision error")
	}
	if !errors.Is(err, services.ErrCollision) {
		t.Fatalf("expected collision marker, got %v", err)
	}
	requireContains(t, err.Error(), filepath.Join(env.root, "a", "report.txt"))
	requireContains(t, err.Error(), filepath.Join(env.root, "b", "report.txt"))

	if _, err := os.Stat(filepath.Join(env.root, "a", "report.txt")); err != nil {
		t.Fatalf("collision run moved a file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.root, "Documents")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("collision run created a category directory: %v", err)
	}
}

func TestOrganizeShowPromptWithoutCredentials(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, env.logDir, "")
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")

	stdout, stderr, err := runCLI(t, []string{"--show-prompt", env.root}, env.configPath)
	if err == nil {
		t.Fatal("expected credential error")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
	requireContains(t, stderr, "Configuration issues detected:")
	requireContains(t, stderr, "- OPENAI_API_KEY is required for the OpenAI provider.")
	if strings.Contains(stdout, "Planned moves") {
		t.Fatalf("gated run still produced a plan:\n%s", stdout)
	}
}

func TestOrganizeShowPromptPrintsRequest(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")
	writeScratchFile(t, filepath.Join(env.root, "notes", "b.txt"), "text")

	stdout, _, err := runCLI(t, []string{"--show-prompt", env.root}, env.configPath)
	if err != nil {
		t.Fatalf("show-prompt failed: %v", err)
	}

	requireContains(t, stdout, "Planned moves:")
	requireContains(t, stdout, "Generated request payload:")
	requireContains(t, stdout, "Provider: openai")
	requireContains(t, stdout, "Model: gpt-4o-mini")
	requireContains(t, stdout, "--- system ---")
	requireContains(t, stdout, "--- user ---")
	requireContains(t, stdout, "a.png")
	requireContains(t, stdout, "notes/b.txt")
	if strings.Contains(stdout, "{{FILE_LIST}}") {
		t.Fatalf("placeholder left in rendered prompt:\n%s", stdout)
	}
}

func TestOrganizeJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")
	writeScratchFile(t, filepath.Join(env.root, "b.txt"), "text")

	stdout, _, err := runCLI(t, []string{"--output", "json", env.root}, env.configPath)
	if err != nil {
		t.Fatalf("json run failed: %v", err)
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode payload: %v\n%s", err, stdout)
	}
	if payload.Root != env.root {
		t.Fatalf("payload root = %q, want %q", payload.Root, env.root)
	}
	if len(payload.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %+v", payload.Actions)
	}
	if payload.Actions[0].Category != "Images" || payload.Actions[1].Category != "Documents" {
		t.Fatalf("unexpected categories: %+v", payload.Actions)
	}
	if payload.TotalBytes != 9 {
		t.Fatalf("total_bytes = %d, want 9", payload.TotalBytes)
	}
	if payload.Request != nil {
		t.Fatalf("request emitted without --show-prompt: %+v", payload.Request)
	}
}

func TestOrganizeTableOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")

	stdout, _, err := runCLI(t, []string{"--output", "table", env.root}, env.configPath)
	if err != nil {
		t.Fatalf("table run failed: %v", err)
	}

	requireContains(t, stdout, "SOURCE")
	requireContains(t, stdout, "DESTINATION")
	requireContains(t, stdout, "a.png")
	requireContains(t, stdout, "Images")
	requireContains(t, stdout, "5 B")
}

func TestOrganizeRejectsUnknownOutputFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"--output", "yaml", env.root}, env.configPath)
	if err == nil {
		t.Fatal("expected format error")
	}
	requireContains(t, err.Error(), `unsupported output format "yaml"`)
}

func TestOrganizeMissingRootFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{filepath.Join(env.root, "missing")}, env.configPath)
	if err == nil {
		t.Fatal("expected missing-root error")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestOrganizeApplyRefusesWhenLockHeld(t *testing.T) {
	env := setupCLITestEnv(t)
	writeScratchFile(t, filepath.Join(env.root, "a.png"), "image")
	if err := os.MkdirAll(env.logDir, 0o755); err != nil {
		t.Fatalf("mkdir log dir: %v", err)
	}

	lock := flock.New(filepath.Join(env.logDir, "organizer.lock"))
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("take lock: ok=%v err=%v", ok, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	_, _, err = runCLI(t, []string{"--apply", env.root}, env.configPath)
	if err == nil {
		t.Fatal("expected lock contention error")
	}
	requireContains(t, err.Error(), "another organizer apply is already running")

	if _, err := os.Stat(filepath.Join(env.root, "a.png")); err != nil {
		t.Fatalf("locked run moved a file: %v", err)
	}
}

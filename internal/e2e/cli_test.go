package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/flarebyte/t9search/internal/testutil"
)

type runResult struct {
	code   int
	stdout []byte
	stderr []byte
}

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildOut  []byte
)

func repoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

func buildT9search(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the binary")
	}
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "t9search-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "t9search")
		if runtime.GOOS == "windows" {
			binPath += ".exe"
		}
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/t9search")
		cmd.Dir = repoRoot()
		cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
		buildOut, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("build failed: %v\n%s", buildErr, string(buildOut))
	}
	return binPath
}

func runCmd(t *testing.T, bin, stdin string, args ...string) runResult {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = -1
		}
	}
	return runResult{code: code, stdout: stdout.Bytes(), stderr: stderr.Bytes()}
}

func seznam(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "seznam.txt"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(b)
}

func assertStable(t *testing.T, runs []runResult) {
	t.Helper()
	if len(runs) < 2 {
		t.Fatalf("need >=2 runs")
	}
	a := runs[0]
	for i, r := range runs[1:] {
		if r.code != a.code {
			t.Fatalf("exit code drift at run %d: %d vs %d", i+1, r.code, a.code)
		}
		if !bytes.Equal(r.stdout, a.stdout) {
			t.Fatalf("stdout drift at run %d", i+1)
		}
		if !bytes.Equal(r.stderr, a.stderr) {
			t.Fatalf("stderr drift at run %d", i+1)
		}
	}
}

func TestCLI_ExactFromStdin(t *testing.T) {
	bin := buildT9search(t)
	r := runCmd(t, bin, seznam(t), "38")
	if r.code != 0 || len(r.stderr) != 0 {
		t.Fatalf("unexpected status %d, stderr %q", r.code, r.stderr)
	}
	if string(r.stdout) != "Petr Dvorak, 603123456\nBedrich Smetana ml., 541141120\n" {
		t.Fatalf("unexpected stdout:\n%s", r.stdout)
	}
}

func TestCLI_NotFoundExitCodes(t *testing.T) {
	bin := buildT9search(t)
	r := runCmd(t, bin, seznam(t), "111111")
	if r.code != 0 || string(r.stdout) != "Not found\n" {
		t.Fatalf("unexpected result: %d %q", r.code, r.stdout)
	}
	r = runCmd(t, bin, seznam(t), "111111", "--strict")
	if r.code != 2 {
		t.Fatalf("expected exit code 2, got %d", r.code)
	}
	if string(r.stderr) != "not found\n" {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
}

func TestCLI_ArgumentErrorIsSingleLine(t *testing.T) {
	bin := buildT9search(t)
	r := runCmd(t, bin, seznam(t), "123", "-l", "3")
	if r.code != 1 {
		t.Fatalf("expected exit code 1, got %d", r.code)
	}
	if len(r.stdout) != 0 {
		t.Fatalf("unexpected stdout: %q", r.stdout)
	}
	if bytes.Count(r.stderr, []byte("\n")) != 1 || !bytes.Contains(r.stderr, []byte("mistake budget")) {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
}

func TestCLI_SeparatedNotFirst(t *testing.T) {
	bin := buildT9search(t)
	r := runCmd(t, bin, seznam(t), "38", "-s")
	if r.code != 1 || string(r.stderr) != "-s must be the first argument\n" {
		t.Fatalf("unexpected result: %d %q", r.code, r.stderr)
	}
}

func TestCLI_DirectoryTree(t *testing.T) {
	bin := buildT9search(t)
	root := filepath.Join(t.TempDir(), "book")
	if err := testutil.CopyTree(filepath.Join("testdata", "book"), root); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if err := testutil.WriteFile(root, "b/skip.txt", "Not A Directory File\n1\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := runCmd(t, bin, "", "--dir", root)
	if r.code != 0 {
		t.Fatalf("unexpected status %d: %s", r.code, r.stderr)
	}
	if string(r.stdout) != "Petr Dvorak, 603123456\nJana Novotna, 777987654\n" {
		t.Fatalf("unexpected stdout:\n%s", r.stdout)
	}
}

func TestDeterminism_SimilarMultiRuns(t *testing.T) {
	bin := buildT9search(t)
	in := seznam(t)
	var runs []runResult
	for i := 0; i < 5; i++ {
		runs = append(runs, runCmd(t, bin, in, "-s", "6039", "-l", "2", "-o", "json"))
	}
	assertStable(t, runs)
	if runs[0].code != 0 {
		t.Fatalf("unexpected status %d: %s", runs[0].code, runs[0].stderr)
	}
}

func TestCLI_Version(t *testing.T) {
	bin := buildT9search(t)
	r := runCmd(t, bin, "", "version")
	if r.code != 0 || string(r.stdout) != "t9search dev\n" {
		t.Fatalf("unexpected result: %d %q", r.code, r.stdout)
	}
}

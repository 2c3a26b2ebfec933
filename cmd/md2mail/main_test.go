package main

// Notes:
// - runMain is exercised end to end with captured output and a fake
//   process environment; bodies are compared with the library output.
// - Tests relying on the default "md" directory change the working
//   directory with t.Chdir and cannot run in parallel.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2mail "github.com/alnah/go-md2mail"
)

const sampleMarkdown = "# memo\n## News\nHello **world**\n- [Shop](https://example.com)\n"

// ---------------------------------------------------------------------------
// TestRunMain_Commands - Dispatch and simple commands
// ---------------------------------------------------------------------------

func TestRunMain_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"version", []string{"version"}, ExitSuccess, "md2mail dev", ""},
		{"help", []string{"help"}, ExitSuccess, "Commands:", ""},
		{"help convert", []string{"help", "convert"}, ExitSuccess, "Usage: md2mail convert", ""},
		{"help lint", []string{"help", "lint"}, ExitSuccess, "Usage: md2mail lint", ""},
		{"help unknown", []string{"help", "nope"}, ExitUsage, "", "Unknown command: nope"},
		{"unknown command", []string{"frobnicate"}, ExitUsage, "", "Unknown command: frobnicate"},
		{"convert help flag", []string{"convert", "--help"}, ExitSuccess, "", "Usage: md2mail convert"},
		{"bad flag", []string{"convert", "--nope"}, ExitUsage, "", "invalid usage"},
		{"batch with input", []string{"convert", "-b", "x.md"}, ExitUsage, "", "--batch uses the configured input directory"},
		{"bad workers", []string{"convert", "-w", "-3", "x.md"}, ExitUsage, "", "invalid worker count"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			code := runMain(append([]string{"md2mail"}, tt.args...), env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_ConvertSingleFile - One document
// ---------------------------------------------------------------------------

func TestRunMain_ConvertSingleFile(t *testing.T) {
	t.Parallel()

	t.Run("html to stdout", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "issue.md")
		writeFile(t, in, sampleMarkdown)

		env, stdout, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if want := md2mail.ToHTML(sampleMarkdown) + "\n"; stdout.String() != want {
			t.Errorf("stdout =\n%q\nwant\n%q", stdout.String(), want)
		}
	})

	t.Run("text to file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "issue.md")
		out := filepath.Join(dir, "mail", "body.txt")
		writeFile(t, in, sampleMarkdown)

		env, stdout, stderr := testEnv(nil)
		code := runMain([]string{"md2mail", "convert", "-f", "text", "-o", out, in}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if got := readFile(t, out); got != md2mail.ToText(sampleMarkdown) {
			t.Errorf("body = %q", got)
		}
		if !strings.Contains(stdout.String(), "Created "+out) {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("both formats into output directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "issue.md")
		out := filepath.Join(dir, "out")
		writeFile(t, in, sampleMarkdown)

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "-f", "both", "-o", out, in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if got := readFile(t, filepath.Join(out, "html", "issue.html")); got != md2mail.ToHTML(sampleMarkdown) {
			t.Errorf("html body = %q", got)
		}
		if got := readFile(t, filepath.Join(out, "text", "issue.txt")); got != md2mail.ToText(sampleMarkdown) {
			t.Errorf("text body = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		if code := runMain([]string{"md2mail", filepath.Join(t.TempDir(), "gone.md")}, env); code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "notes.txt")
		writeFile(t, in, "x")

		env, _, _ := testEnv(nil)
		if code := runMain([]string{"md2mail", "convert", in}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, in, "x")

		env, _, _ := testEnv(nil)
		if code := runMain([]string{"md2mail", "-f", "pdf", in}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("unknown footer lists available sets", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, in, "x")

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "--footer", "shop", in}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "hint: available: default") {
			t.Errorf("stderr = %q, want footer hint", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_ConvertDirectory - Batch conversion
// ---------------------------------------------------------------------------

func TestRunMain_ConvertDirectory(t *testing.T) {
	t.Parallel()

	t.Run("explicit directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "drafts")
		out := filepath.Join(dir, "out")
		writeFile(t, filepath.Join(src, "a.md"), "A")
		writeFile(t, filepath.Join(src, "b.md"), "B")
		writeFile(t, filepath.Join(src, "old", "c.md"), "C")

		env, stdout, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "convert", "-o", out, src}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if got := readFile(t, filepath.Join(out, "b.html")); got != md2mail.ToHTML("B") {
			t.Errorf("b.html = %q", got)
		}
		if _, err := os.Stat(filepath.Join(out, "old", "c.html")); !os.IsNotExist(err) {
			t.Errorf("subdirectory converted without --recursive (err = %v)", err)
		}
		if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("recursive", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "drafts")
		out := filepath.Join(dir, "out")
		writeFile(t, filepath.Join(src, "old", "c.md"), "C")

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "-r", "-f", "text", "-o", out, src}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if got := readFile(t, filepath.Join(out, "old", "c.txt")); got != md2mail.ToText("C") {
			t.Errorf("c.txt = %q", got)
		}
	})

	t.Run("empty directory succeeds", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		env, stdout, _ := testEnv(nil)
		if code := runMain([]string{"md2mail", src}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "No markdown files found") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("failures are reported per file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "drafts")
		writeFile(t, filepath.Join(src, "a.md"), "A")
		writeFile(t, filepath.Join(src, "b.md"), "B")
		blocker := filepath.Join(dir, "blocker")
		writeFile(t, blocker, "not a directory")

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "-o", blocker, src}, env); code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		if strings.Count(stderr.String(), "FAILED") != 2 {
			t.Errorf("stderr = %q, want two FAILED lines", stderr.String())
		}
		if !strings.Contains(stderr.String(), "2 of 2 file(s)") {
			t.Errorf("stderr = %q, want summary error", stderr.String())
		}
	})

	t.Run("config and environment", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "drafts")
		writeFile(t, filepath.Join(src, "a.md"), "A")
		writeFile(t, filepath.Join(dir, "footers", "footers", "shop", "footer.html"), "<p>shop %cancelurl%</p>\n")
		writeFile(t, filepath.Join(dir, "footers", "footers", "shop", "footer.txt"), "shop %cancelurl%\n")

		cfgPath := filepath.Join(dir, "mail.yaml")
		writeFile(t, cfgPath, "format: html\n"+
			"output:\n  textDir: "+filepath.Join(dir, "text")+"\n"+
			"footer:\n  name: shop\n")

		env, _, stderr := testEnv(map[string]string{
			"MD2MAIL_CONFIG":     cfgPath,
			"MD2MAIL_FORMAT":     "text",
			"MD2MAIL_ASSET_PATH": filepath.Join(dir, "footers"),
		})
		if code := runMain([]string{"md2mail", src}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if got := readFile(t, filepath.Join(dir, "text", "a.txt")); got != "A\nshop %cancelurl%" {
			t.Errorf("a.txt = %q", got)
		}
	})

	t.Run("missing config name", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "-c", "no-such-mail-config", t.TempDir()}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "hint: use --config") {
			t.Errorf("stderr = %q, want config hint", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_DefaultDirectory - Conventional md/ layout
// ---------------------------------------------------------------------------

func TestRunMain_DefaultDirectory(t *testing.T) {
	t.Run("converts md into .html", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		writeFile(t, filepath.Join("md", "issue-01.md"), sampleMarkdown)

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		if got := readFile(t, filepath.Join(".html", "issue-01.html")); got != md2mail.ToHTML(sampleMarkdown) {
			t.Errorf("body = %q", got)
		}
	})

	t.Run("batch flag with both formats", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		writeFile(t, filepath.Join("md", "a.md"), "A")

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "-b", "-f", "both"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
		}
		readFile(t, filepath.Join(".html", "a.html"))
		readFile(t, filepath.Join(".text", "a.txt"))
	})

	t.Run("missing md directory", func(t *testing.T) {
		chdir(t, t.TempDir())

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail"}, env); code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "hint: create md/") {
			t.Errorf("stderr = %q, want input hint", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Lint - Dialect checks
// ---------------------------------------------------------------------------

func TestRunMain_Lint(t *testing.T) {
	t.Parallel()

	t.Run("clean file", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, in, sampleMarkdown)

		env, stdout, _ := testEnv(nil)
		if code := runMain([]string{"md2mail", "lint", in}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "1 file(s) checked, no issues") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("issues reported with location", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"), "intro\n\n> quoted\n")
		writeFile(t, filepath.Join(dir, "b.md"), "fine\n")

		env, stdout, stderr := testEnv(nil)
		if code := runMain([]string{"md2mail", "lint", dir}, env); code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		want := filepath.Join(dir, "a.md") + ":3: blockquotes"
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
		if !strings.Contains(stderr.String(), "1 issue(s) in 2 file(s)") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}

func TestRunMain_Footers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "footers", "shop", "footer.html"), "<p>%cancelurl%</p>")
	writeFile(t, filepath.Join(dir, "footers", "shop", "footer.txt"), "%cancelurl%")

	env, stdout, stderr := testEnv(nil)
	if code := runMain([]string{"md2mail", "footers", "--asset-path", dir}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if want := "* default\n  shop\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunMain_FootersMarksConfiguredSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "footers", "shop", "footer.html"), "<p>%cancelurl%</p>")
	writeFile(t, filepath.Join(dir, "footers", "shop", "footer.txt"), "%cancelurl%")

	cfgPath := filepath.Join(dir, "mail.yaml")
	writeFile(t, cfgPath, "footer:\n  name: shop\n")

	env, stdout, stderr := testEnv(map[string]string{"MD2MAIL_ASSET_PATH": dir})
	if code := runMain([]string{"md2mail", "footers", "-c", cfgPath}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if want := "  default\n* shop\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

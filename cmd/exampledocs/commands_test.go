package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/exampledocs/internal/config"
	"github.com/gorewood/exampledocs/internal/output"
)

const functionsExample = `"""
Define and call functions.

Usage:
` + "`python 01_functions.py`" + `
"""
def greet(name):
    return "hello " + name


print(greet("world"))
`

const containersExample = `"""
Lists, dicts and sets.

Usage:
` + "`python 02_containers.py --foo 1`" + `
` + "`python 02_containers.py --foo \"a b\"`" + `
"""
print([1, 2, 3])
`

// setupRepo creates a repository with two examples and isolates the
// global config and EXAMPLEDOCS_* environment from the host.
func setupRepo(t *testing.T) string {
	t.Helper()
	t.Setenv("EXAMPLEDOCS_CONFIG_HOME", t.TempDir())
	for _, key := range []string{config.EnvExamplesDir, config.EnvDocsDir, config.EnvRuntime} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "examples", "01_functions.py"), functionsExample)
	writeTestFile(t, filepath.Join(root, "examples", "02_containers.py"), containersExample)
	if err := os.MkdirAll(filepath.Join(root, "docs", "source"), 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// runCLI executes the root command against root and returns stdout and
// stderr separately.
func runCLI(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--repo-root", root}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func outputDir(root string) string {
	return filepath.Join(root, "docs", "source", "examples")
}

func TestGenerate_WritesPages(t *testing.T) {
	root := setupRepo(t)

	stdout, stderr, err := runCLI(t, root, "generate")
	if err != nil {
		t.Fatalf("generate error = %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "Generated 2 example pages in "+outputDir(root)) {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "resetting "+outputDir(root)) {
		t.Errorf("stderr should report the reset: %q", stderr)
	}

	data, err := os.ReadFile(filepath.Join(outputDir(root), "02_containers.rst"))
	if err != nil {
		t.Fatalf("reading page: %v", err)
	}
	page := string(data)
	for _, want := range []string{
		"2. Containers\n==========================================\n",
		"Lists, dicts and sets.",
		"        <kbd>python 02_containers.py --foo 1</kbd>",
		".. program-output:: python ../../examples/02_containers.py --foo 1\n",
		".. program-output:: python ../../examples/02_containers.py --foo 'a b'\n",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page should contain %q:\n%s", want, page)
		}
	}

	if _, err := os.Stat(filepath.Join(outputDir(root), "01_functions.rst")); err != nil {
		t.Errorf("01_functions.rst missing: %v", err)
	}
}

func TestGenerate_VerboseLogsEachPage(t *testing.T) {
	root := setupRepo(t)

	_, stderr, err := runCLI(t, root, "generate", "--verbose")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(stderr, `[verbose] parsed 01_functions.py: "Functions" with 1 usage(s)`) {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "[verbose] wrote "+filepath.Join(outputDir(root), "02_containers.rst")) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestGenerate_JSON(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "generate", "--json")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	var result struct {
		Status    string   `json:"status"`
		OutputDir string   `json:"output_dir"`
		Count     int      `json:"count"`
		Files     []string `json:"files"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Status != "ok" || result.Count != 2 || len(result.Files) != 2 {
		t.Errorf("result = %+v", result)
	}
	if result.OutputDir != outputDir(root) {
		t.Errorf("output_dir = %q, want %q", result.OutputDir, outputDir(root))
	}
}

func TestGenerate_RemovesStalePages(t *testing.T) {
	root := setupRepo(t)
	stale := filepath.Join(outputDir(root), "09_removed.rst")
	writeTestFile(t, stale, "old page")

	if _, _, err := runCLI(t, root, "generate"); err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale page should be removed, stat err = %v", err)
	}
}

func TestGenerate_MalformedExampleKeepsPages(t *testing.T) {
	root := setupRepo(t)
	if _, _, err := runCLI(t, root, "generate"); err != nil {
		t.Fatalf("generate error = %v", err)
	}

	writeTestFile(t, filepath.Join(root, "examples", "03_broken.py"), "print('no doc comment')\n")

	_, stderr, err := runCLI(t, root, "generate")
	if err == nil {
		t.Fatal("generate should fail on a malformed example")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, "03_broken.py") {
		t.Errorf("stderr should name the failing file: %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(outputDir(root), "01_functions.rst")); err != nil {
		t.Errorf("existing pages should survive a failed run: %v", err)
	}
}

func TestGenerate_MalformedFilenameJSON(t *testing.T) {
	root := setupRepo(t)
	writeTestFile(t, filepath.Join(root, "examples", "intro.py"), functionsExample)

	stdout, _, err := runCLI(t, root, "generate", "--json")
	if err == nil {
		t.Fatal("generate should fail on a file name without index")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, stdout)
	}
	if code, ok := result["code"].(float64); !ok || int(code) != output.ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], output.ExitUserError)
	}
	if msg, _ := result["error"].(string); !strings.Contains(msg, "intro.py") {
		t.Errorf("error = %q, want file name", msg)
	}
}

func TestGenerate_MissingExamplesDir(t *testing.T) {
	root := setupRepo(t)

	_, _, err := runCLI(t, root, "generate", "--examples-dir", filepath.Join(root, "nowhere"))
	if err == nil {
		t.Fatal("generate should fail when the examples dir is missing")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}

func TestGenerate_InvalidProjectConfig(t *testing.T) {
	root := setupRepo(t)
	writeTestFile(t, filepath.Join(root, config.ProjectFileName), "no_such_key: true\n")

	_, _, err := runCLI(t, root, "generate")
	if err == nil {
		t.Fatal("generate should reject an unknown config key")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestCheck(t *testing.T) {
	root := setupRepo(t)

	_, _, err := runCLI(t, root, "check")
	if code := output.GetExitCode(err); code != output.ExitCheckFailed {
		t.Fatalf("check before generate: exit code = %d, want %d", code, output.ExitCheckFailed)
	}

	if _, _, err := runCLI(t, root, "generate"); err != nil {
		t.Fatalf("generate error = %v", err)
	}

	stdout, _, err := runCLI(t, root, "check")
	if err != nil {
		t.Fatalf("check after generate error = %v", err)
	}
	if !strings.Contains(stdout, "up to date") {
		t.Errorf("stdout = %q", stdout)
	}

	writeTestFile(t, filepath.Join(outputDir(root), "01_functions.rst"), "edited by hand")
	stdout, stderr, err := runCLI(t, root, "check")
	if code := output.GetExitCode(err); code != output.ExitCheckFailed {
		t.Fatalf("check after edit: exit code = %d, want %d", code, output.ExitCheckFailed)
	}
	if !strings.Contains(stdout, "Stale") || !strings.Contains(stdout, "01_functions.rst") {
		t.Errorf("stdout should list the stale page: %q", stdout)
	}
	if !strings.Contains(stderr, "out of date") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCheck_JSON(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "generate", "--check", "--json")
	if code := output.GetExitCode(err); code != output.ExitCheckFailed {
		t.Fatalf("exit code = %d, want %d", code, output.ExitCheckFailed)
	}

	var result struct {
		UpToDate bool     `json:"up_to_date"`
		Missing  []string `json:"missing"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, stdout)
	}
	if result.UpToDate {
		t.Error("up_to_date should be false before generate")
	}
	if len(result.Missing) != 2 {
		t.Errorf("missing = %v, want 2 pages", result.Missing)
	}
	if _, err := os.Stat(outputDir(root)); !os.IsNotExist(err) {
		t.Errorf("check must not create the output dir, stat err = %v", err)
	}
}

func TestList(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"TITLE", "Functions", "Containers", "02_containers.rst"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output should contain %q: %q", want, stdout)
		}
	}
}

func TestList_JSON(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "list", "--json")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	var items []listItem
	if err := json.Unmarshal([]byte(stdout), &items); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, stdout)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1].Title != "Containers" || items[1].File != "02_containers.py" || len(items[1].Usages) != 2 {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestList_Empty(t *testing.T) {
	root := setupRepo(t)
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, root, "list", "--examples-dir", filepath.Join(root, "empty"))
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(stdout, "No examples found") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestShow(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "show", "2")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	for _, want := range []string{"2. Containers", "File: 02_containers.py", "Lists, dicts and sets.", `python 02_containers.py --foo "a b"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("show output should contain %q: %q", want, stdout)
		}
	}
}

func TestShow_Render(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "show", "01_functions.py", "--render")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.HasPrefix(stdout, ".. Comment: this file is automatically generated by `exampledocs generate`.") {
		t.Errorf("rendered page should start with the generated comment: %q", stdout)
	}
	if !strings.Contains(stdout, ".. program-output:: python ../../examples/01_functions.py\n") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestShow_NotFound(t *testing.T) {
	root := setupRepo(t)

	_, stderr, err := runCLI(t, root, "show", "99")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, `no example matches "99"`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestConfig(t *testing.T) {
	root := setupRepo(t)
	writeTestFile(t, filepath.Join(root, config.ProjectFileName), "runtime: python3\n")

	stdout, _, err := runCLI(t, root, "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"runtime: python3", "examples_dir: examples", "Source: " + filepath.Join(root, config.ProjectFileName)} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config output should contain %q: %q", want, stdout)
		}
	}
}

func TestConfig_JSON(t *testing.T) {
	root := setupRepo(t)

	stdout, _, err := runCLI(t, root, "config", "--json", "--docs-dir", filepath.Join(root, "site"))
	if err != nil {
		t.Fatalf("config error = %v", err)
	}

	var result struct {
		Config    config.Config `json:"config"`
		OutputDir string        `json:"output_dir"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Config.RepoRoot != root {
		t.Errorf("repo_root = %q, want %q", result.Config.RepoRoot, root)
	}
	if want := filepath.Join(root, "site", "examples"); result.OutputDir != want {
		t.Errorf("output_dir = %q, want %q", result.OutputDir, want)
	}
}

func TestGenDocs(t *testing.T) {
	root := setupRepo(t)
	target := filepath.Join(t.TempDir(), "cli")

	if _, _, err := runCLI(t, root, "gen-docs", target); err != nil {
		t.Fatalf("gen-docs error = %v", err)
	}
	for _, name := range []string{"exampledocs.md", "exampledocs_generate.md", "exampledocs_show.md"} {
		if _, err := os.Stat(filepath.Join(target, name)); err != nil {
			t.Errorf("%s not generated: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(target, "exampledocs_gen-docs.md")); !os.IsNotExist(err) {
		t.Errorf("hidden gen-docs should not be documented, stat err = %v", err)
	}
}

func TestServe_InvalidConfigReportsError(t *testing.T) {
	root := setupRepo(t)
	writeTestFile(t, filepath.Join(root, config.ProjectFileName), "bogus: 1\n")

	stdout, stderr, err := runCLI(t, root, "serve")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if stdout != "" {
		t.Errorf("stdout should stay empty, got %q", stdout)
	}
	if !strings.Contains(stderr, "Error: parsing "+filepath.Join(root, config.ProjectFileName)) {
		t.Errorf("stderr should report the config error: %q", stderr)
	}
}

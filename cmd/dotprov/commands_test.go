package dotprov

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/testutil"
	"github.com/arthur-debert/dotprov/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func decodeLines(t *testing.T, out string) []types.Result {
	t.Helper()
	var results []types.Result
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		var r types.Result
		require.NoError(t, json.Unmarshal([]byte(line), &r), line)
		results = append(results, r)
	}
	return results
}

// sourceEnv isolates the command and lays out a small source package
func sourceEnv(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"bin":  testutil.FileTree{"tool": testutil.Executable("#!/bin/sh\n")},
		"conf": testutil.FileTree{"a.txt": "a"},
	})
	return env
}

func infoArg(t *testing.T, sources ...string) string {
	t.Helper()
	if sources == nil {
		sources = []string{}
	}
	data, err := json.Marshal(map[string][]string{"sources": sources})
	require.NoError(t, err)
	return string(data)
}

func TestProvision_JSONLines(t *testing.T) {
	env := sourceEnv(t)
	pkg := env.SourceRoot

	stdin := `[
		{"declaration": "files", "state": {"source": "bin/tool", "destination": "~/bin/tool", "link_files": true}},
		{"declaration": "files", "state": {"source": "conf", "destination": "~/.conf"}},
		{"declaration": "directories", "state": "~/.cache/tool"}
	]`

	out, err := execute(t, stdin, "provision", infoArg(t, pkg))
	require.NoError(t, err)

	assert.Equal(t, ""+
		`{"status":"success","changed":true,"description":"link ~/bin/tool","output":""}`+"\n"+
		`{"status":"success","changed":true,"description":"create ~/.conf","output":""}`+"\n"+
		`{"status":"success","changed":true,"description":"create ~/.conf/a.txt","output":""}`+"\n"+
		`{"status":"success","changed":true,"description":"create ~/.cache/tool","output":""}`+"\n",
		out)

	target, err := os.Readlink(env.HomePath("bin", "tool"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkg, "bin", "tool"), target)

	// a second run changes nothing
	out, err = execute(t, stdin, "provision", infoArg(t, pkg))
	require.NoError(t, err)
	for _, r := range decodeLines(t, out) {
		assert.False(t, r.Changed, r.Description)
	}
}

func TestProvision_MalformedInput(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "{not json", "provision", infoArg(t, t.TempDir()))
	require.NoError(t, err, "per-entry failures do not fail the process")

	results := decodeLines(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, types.StatusFailed, results[0].Status)
	assert.False(t, results[0].Changed)
	assert.Equal(t, "files", results[0].Description)
	assert.True(t, strings.HasSuffix(results[0].Output, ": failed deserializing"), results[0].Output)
}

func TestProvision_FailOnError(t *testing.T) {
	testutil.NewTestEnvironment(t)
	stdin := `[{"declaration": "files", "state": {"source": "missing", "destination": "~/missing"}}]`

	out, err := execute(t, stdin, "provision", infoArg(t, t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, `{"status":"failed","changed":false,"description":"~/missing","output":"missing: does not exist"}`+"\n", out)

	out, err = execute(t, stdin, "provision", "--fail-on-error", infoArg(t, t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEntryFailed))
	assert.Equal(t, "1 of 1 entries failed", errors.Diagnostic(err))
	assert.Len(t, decodeLines(t, out), 1)
}

func TestProvision_ConfiguredSources(t *testing.T) {
	pkg := sourceEnv(t).SourceRoot
	t.Setenv("DOTPROV_PROVISION_SOURCES", pkg)

	stdin := `[{"declaration": "files", "state": {"source": "conf", "destination": "~/.conf"}}]`
	out, err := execute(t, stdin, "provision")
	require.NoError(t, err)

	results := decodeLines(t, out)
	require.Len(t, results, 2)
	assert.Equal(t, "create ~/.conf/a.txt", results[1].Description)
}

func TestProvision_NoSources(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "[]", "provision")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestProvision_InvalidInfo(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "[]", "provision", "not json")
	assert.Error(t, err)
}

func TestProvision_YAMLFileAndTextOutput(t *testing.T) {
	pkg := sourceEnv(t).SourceRoot

	input := filepath.Join(t.TempDir(), "states.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`
- declaration: files
  state:
    source: bin/tool
    destination: ~/bin/tool
    link_files: true
- declaration: files
  state:
    source: nope
    destination: ~/nope
`), 0644))

	out, err := execute(t, "", "provision",
		"--input", input,
		"--input-format", "yaml",
		"--format", "text",
		"--no-color",
		infoArg(t, pkg))
	require.NoError(t, err)

	assert.Equal(t, ""+
		"changed link ~/bin/tool\n"+
		"failed  ~/nope\n"+
		"    nope: does not exist\n"+
		"2 entries, 1 changed, 1 failed\n",
		out)
}

func TestProvision_MissingInputFile(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "", "provision", "--input", filepath.Join(t.TempDir(), "none.json"), infoArg(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestProvision_BadInputFormat(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "[]", "provision", "--input-format", "xml", infoArg(t))
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("DOTPROV_OUTPUT_FORMAT", "text")

	out, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[output]")
	assert.Regexp(t, `format = ['"]text['"]`, out)
}

func TestConfigCmd_InvalidConfig(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("DOTPROV_OUTPUT_FORMAT", "xml")

	_, err := execute(t, "", "config")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dotprov version "), out)
}

func TestCompletionCmd(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, "", "completion", shell)
		require.NoError(t, err, shell)
		assert.Contains(t, out, "dotprov", shell)
	}

	_, err := execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

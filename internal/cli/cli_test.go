package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSchema = `{
	"OS_Error_t": [
		{ "description": "General error codes", "offset": "-1", "members": [
			{ "name": "OS_ERROR_GENERIC", "description": "general error" },
			{ "name": "OS_ERROR_NOT_FOUND", "description": "not found" }
		]}
	]
}`

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "errors.json")
	if err := os.WriteFile(in, []byte(sampleSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	header := filepath.Join(dir, "OS_Error.h")
	source := filepath.Join(dir, "OS_Error.c")

	_, errOut, err := runCmd(t, "generate", "-i", in, "--header", header, "--source", source)
	if err != nil {
		t.Fatalf("generate failed: %v (stderr: %s)", err, errOut)
	}

	h, err := os.ReadFile(header)
	if err != nil {
		t.Fatalf("header not written: %v", err)
	}
	if !strings.Contains(string(h), "    OS_ERROR_NOT_FOUND = -2, ///< not found\n") {
		t.Fatalf("unexpected header content:\n%s", h)
	}
	if _, err := os.Stat(source); err != nil {
		t.Fatalf("source stub not written: %v", err)
	}
}

func TestGenerateCommand_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "errors.json")
	bad := `{"OS_Error_t":[{"description":"d","offset":"1","members":[{"description":"no name"}]}]}`
	if err := os.WriteFile(in, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	header := filepath.Join(dir, "OS_Error.h")
	source := filepath.Join(dir, "OS_Error.c")

	_, errOut, err := runCmd(t, "generate", "-i", in, "--header", header, "--source", source)
	if err == nil {
		t.Fatalf("expected failure for invalid schema")
	}
	if !strings.Contains(errOut, "/OS_Error_t/0/members/0/name") {
		t.Fatalf("expected issue path on stderr, got: %s", errOut)
	}
	if _, serr := os.Stat(header); !os.IsNotExist(serr) {
		t.Fatalf("no output may be written on a schema error")
	}
	if _, serr := os.Stat(source); !os.IsNotExist(serr) {
		t.Fatalf("no output may be written on a schema error")
	}
}

func TestValidateCommand_OK(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "errors.json")
	if err := os.WriteFile(in, []byte(sampleSchema), 0o644); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := runCmd(t, "validate", "-i", in)
	if err != nil {
		t.Fatalf("validate failed: %v (stderr: %s)", err, errOut)
	}
	if !strings.Contains(out, "OK: 1 domains, 2 codes") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestValidateCommand_CustomRootKey(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "errors.json")
	doc := `{"Errors":[{"description":"d","offset":"3","members":[{"name":"A","description":"a"}]}]}`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCmd(t, "validate", "-i", in, "--root-key", "Errors"); err != nil {
		t.Fatalf("validate with custom root key failed: %v", err)
	}
}

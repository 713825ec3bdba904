package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/config"
	"github.com/faizmokh/kosakata/internal/files"
	"github.com/faizmokh/kosakata/internal/vocab"
)

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newTempWorkspace(t *testing.T) *workspace {
	t.Helper()
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return &workspace{manager: mgr, config: config.Default()}
}

func writeWorkspaceFile(t *testing.T, ws *workspace, name, contents string) {
	t.Helper()
	path := ws.manager.Resolve(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func readWorkspaceFile(t *testing.T, ws *workspace, name string) string {
	t.Helper()
	data, err := os.ReadFile(ws.manager.Resolve(name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestParseClassFlag(t *testing.T) {
	tests := []struct {
		in       string
		want     vocab.Class
		filtered bool
		wantErr  bool
	}{
		{in: "", filtered: false},
		{in: "double", want: vocab.ClassDouble, filtered: true},
		{in: "**", want: vocab.ClassDouble, filtered: true},
		{in: "Single", want: vocab.ClassSingle, filtered: true},
		{in: "plain", want: vocab.ClassPlain, filtered: true},
		{in: "bold", wantErr: true},
	}

	for _, tt := range tests {
		got, filtered, err := parseClassFlag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseClassFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil {
			continue
		}
		if filtered != tt.filtered || (filtered && got != tt.want) {
			t.Fatalf("parseClassFlag(%q) = %v, %v; want %v, %v", tt.in, got, filtered, tt.want, tt.filtered)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "b", "c"); got != "b" {
		t.Fatalf("firstNonEmpty() = %q, want %q", got, "b")
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("firstNonEmpty() = %q, want empty", got)
	}
}

package vocab

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/faizmokh/kosakata/internal/files"
)

func sampleReport() Report {
	return DefaultClassifier().Group([]string{
		"**abandon** (v.) to leave behind",
		"ability",
		"*able* - having the power",
		"**about**",
	})
}

func TestFormatReport(t *testing.T) {
	got := FormatReport(sampleReport(), WriteOptions{})

	want := []string{
		"~** (count: 2)",
		"**abandon** (v.) to leave behind",
		"**about**",
		"",
		"~* (count: 1)",
		"*able* - having the power",
		"",
		"~ (count: 1)",
		"ability",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FormatReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatReportEmptyGroups(t *testing.T) {
	got := FormatReport(DefaultClassifier().Group(nil), WriteOptions{})

	want := []string{"~** (count: 0)", "", "~* (count: 0)", "", "~ (count: 0)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FormatReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatReportPlainKeepsGrouping(t *testing.T) {
	got := FormatReport(sampleReport(), WriteOptions{Plain: true})

	if got[0] != "~** (count: 2)" {
		t.Fatalf("header = %q, want %q", got[0], "~** (count: 2)")
	}
	if got[1] != "abandon (v.) to leave behind" {
		t.Fatalf("plain entry = %q, want %q", got[1], "abandon (v.) to leave behind")
	}
	if got[5] != "able - having the power" {
		t.Fatalf("plain entry = %q, want %q", got[5], "able - having the power")
	}
}

func TestWriterWrite(t *testing.T) {
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	path, err := NewWriter(mgr).Write(context.Background(), "words_by_star.txt", sampleReport(), WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	want := strings.TrimLeft(`
~** (count: 2)
**abandon** (v.) to leave behind
**about**

~* (count: 1)
*able* - having the power

~ (count: 1)
ability
`, "\n")
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
	if bytes.Contains(got, []byte("\r")) {
		t.Fatalf("file contains carriage returns: %q", got)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, DefaultClassifier().Group([]string{"x"}), WriteOptions{}); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	want := "~** (count: 0)\n\n~* (count: 0)\n\n~ (count: 1)\nx\n"
	if buf.String() != want {
		t.Fatalf("WriteReport() = %q, want %q", buf.String(), want)
	}
}

func TestWriterWithoutManager(t *testing.T) {
	var w *Writer
	if _, err := w.Write(context.Background(), "out.txt", Report{}, WriteOptions{}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Write() error = %v, want ErrNotInitialized", err)
	}
}

package cli

import (
	"context"
	"strings"
	"testing"
)

const sampleWords = `A
**abandon** (v.
to leave behind)
*able* - having the power
ability

B
**back**
— the rear part
`

func TestStarsCommandWritesReport(t *testing.T) {
	ws := newTempWorkspace(t)
	writeWorkspaceFile(t, ws, "words.txt", sampleWords)

	out := executeCommand(t, newStarsCommand(context.Background(), ws))
	assertContains(t, out, "Wrote 4 entries to "+ws.manager.Resolve("words_by_star.txt"))
	assertContains(t, out, "~**: 2")
	assertContains(t, out, "~*: 1")
	assertContains(t, out, "~: 1")

	want := strings.TrimLeft(`
~** (count: 2)
**abandon** (v. to leave behind)
**back** — the rear part

~* (count: 1)
*able* - having the power

~ (count: 1)
ability
`, "\n")
	if got := readWorkspaceFile(t, ws, "words_by_star.txt"); got != want {
		t.Fatalf("report = %q, want %q", got, want)
	}
}

func TestStarsCommandStdoutPlain(t *testing.T) {
	ws := newTempWorkspace(t)
	writeWorkspaceFile(t, ws, "lists/g3.txt", sampleWords)

	out := executeCommand(t, newStarsCommand(context.Background(), ws),
		"--input", "lists/g3.txt",
		"--stdout",
		"--plain",
	)
	assertContains(t, out, "~** (count: 2)\nabandon (v. to leave behind)\nback — the rear part\n")
	assertContains(t, out, "~* (count: 1)\nable - having the power\n")
	assertNotContains(t, out, "Wrote")
}

func TestStarsCommandMissingInput(t *testing.T) {
	ws := newTempWorkspace(t)

	cmd := newStarsCommand(context.Background(), ws)
	cmd.SetArgs([]string{"--input", "nope.txt"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want missing file error")
	}
}

package cli

import (
	"context"
	"strings"
	"testing"
)

func TestEntriesCommandListsAll(t *testing.T) {
	ws := newTempWorkspace(t)
	writeWorkspaceFile(t, ws, "words.txt", sampleWords)

	out := executeCommand(t, newEntriesCommand(context.Background(), ws))
	want := strings.Join([]string{
		"1. **abandon** (v. to leave behind)",
		"2. *able* - having the power",
		"3. ability",
		"4. **back** — the rear part",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestEntriesCommandFiltersByClass(t *testing.T) {
	ws := newTempWorkspace(t)
	writeWorkspaceFile(t, ws, "words.txt", sampleWords)

	out := executeCommand(t, newEntriesCommand(context.Background(), ws), "--class", "double")
	assertContains(t, out, "1. **abandon** (v. to leave behind)")
	assertContains(t, out, "2. **back** — the rear part")
	assertNotContains(t, out, "ability")
}

func TestEntriesCommandEmptyGroup(t *testing.T) {
	ws := newTempWorkspace(t)
	writeWorkspaceFile(t, ws, "words.txt", "plain\nwords\n")

	out := executeCommand(t, newEntriesCommand(context.Background(), ws), "--class", "single")
	if out != "(no entries)\n" {
		t.Fatalf("output = %q, want %q", out, "(no entries)\n")
	}
}

func TestEntriesCommandRejectsUnknownClass(t *testing.T) {
	ws := newTempWorkspace(t)
	writeWorkspaceFile(t, ws, "words.txt", sampleWords)

	cmd := newEntriesCommand(context.Background(), ws)
	cmd.SetArgs([]string{"--class", "bold"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid class") {
		t.Fatalf("Execute() error = %v, want invalid class", err)
	}
}

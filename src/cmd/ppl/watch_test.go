package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.ppl")
	if err := os.WriteFile(path, []byte("HLT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	runs := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchAndRun(ctx, path, func(content string) { runs <- content })
	}()

	select {
	case got := <-runs:
		if got != "HLT\n" {
			t.Errorf("Expected initial content, got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Initial run did not happen")
	}

	// Give the watcher time to register before changing the file
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("INTEGER x\nHLT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-runs:
		if got != "INTEGER x\nHLT\n" {
			t.Errorf("Expected new content, got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Change was not picked up")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watcher did not stop after cancel")
	}
}

func TestWatchMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.ppl")
	called := false
	err := watchAndRun(context.Background(), path, func(string) { called = true })
	if err == nil {
		t.Error("Expected an error watching a missing file")
	}
	if called {
		t.Error("Run should not be called for a missing file")
	}
}

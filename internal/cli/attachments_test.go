// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := loadAttachment(path)
	if err != nil {
		t.Fatalf("loadAttachment: %v", err)
	}
	if a.Name != "notes.txt" {
		t.Errorf("Name = %q, want notes.txt", a.Name)
	}
	// "hello" base64-encodes as aGVsbG8=
	if !strings.HasPrefix(a.DataURL, "data:text/plain") {
		t.Errorf("DataURL = %q, want a text/plain data URL", a.DataURL)
	}
	if !strings.HasSuffix(a.DataURL, ";base64,aGVsbG8=") {
		t.Errorf("DataURL = %q, want base64 payload", a.DataURL)
	}
}

func TestLoadAttachmentUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.xyzzy")
	if err := os.WriteFile(path, []byte{0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := loadAttachment(path)
	if err != nil {
		t.Fatalf("loadAttachment: %v", err)
	}
	if !strings.HasPrefix(a.DataURL, "data:application/octet-stream;base64,") {
		t.Errorf("DataURL = %q, want octet-stream fallback", a.DataURL)
	}
}

func TestLoadAttachmentMissingFile(t *testing.T) {
	if _, err := loadAttachment(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestAttachmentListRemoveAt(t *testing.T) {
	var l attachmentList
	l.add(attachment{Name: "a"})
	l.add(attachment{Name: "b"})
	l.add(attachment{Name: "c"})

	if !l.removeAt(1) {
		t.Fatal("removeAt(1) should succeed")
	}
	if len(l.files) != 2 || l.files[0].Name != "a" || l.files[1].Name != "c" {
		t.Errorf("files = %+v, want [a c]", l.files)
	}

	if l.removeAt(5) || l.removeAt(-1) {
		t.Error("out-of-range removal must be a no-op")
	}

	l.clear()
	if !l.empty() {
		t.Error("clear should leave the list empty")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// attachments.go - Session-local file attachments for the REPL.
//
// /attach reads a file into an in-memory data URL; /detach drops one by
// its listed number. Attachments live only for the current session and
// are cleared when a new conversation starts.
package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// maxAttachmentSize caps a single attached file at 10 MB.
const maxAttachmentSize = 10 << 20

// attachment is one uploaded file held as a data URL.
type attachment struct {
	Name    string
	DataURL string
}

// attachmentList holds the session's attachments in upload order.
type attachmentList struct {
	files []attachment
}

// add appends one attachment.
func (l *attachmentList) add(a attachment) {
	l.files = append(l.files, a)
}

// removeAt drops the attachment at a zero-based index. Out-of-range
// indexes are a no-op.
func (l *attachmentList) removeAt(i int) bool {
	if i < 0 || i >= len(l.files) {
		return false
	}
	l.files = append(l.files[:i], l.files[i+1:]...)
	return true
}

// clear drops every attachment.
func (l *attachmentList) clear() {
	l.files = nil
}

func (l *attachmentList) empty() bool {
	return len(l.files) == 0
}

// loadAttachment reads a file into an attachment. The MIME type comes
// from the extension, falling back to application/octet-stream.
func loadAttachment(path string) (attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return attachment{}, err
	}
	if info.Size() > maxAttachmentSize {
		return attachment{}, fmt.Errorf("%s is larger than 10 MB", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return attachment{}, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return attachment{
		Name:    filepath.Base(path),
		DataURL: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the TUI.
//
// This file implements thread-safe cancel handling for the in-flight
// request and the typing animation, which are touched from both the
// Update loop and request goroutines.
package chat

import (
	"context"
	"sync"

	"github.com/darkvoid-labs/dark-tui/internal/typing"
)

// =============================================================================
// CANCEL MANAGEMENT (THREAD-SAFE)
// =============================================================================

// cancelManager guards the request cancel function and the active
// typing presenter. IMPORTANT: always held as a pointer in the Model so
// Bubble Tea's model copies share one mutex.
type cancelManager struct {
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	presenter  *typing.Presenter
}

func newCancelManager() *cancelManager {
	return &cancelManager{}
}

// setRequest stores the cancel function for a newly started request.
func (cm *cancelManager) setRequest(fn context.CancelFunc) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.cancelFunc = fn
}

// setPresenter installs a new typing presenter, cancelling any animation
// still running.
func (cm *cancelManager) setPresenter(p *typing.Presenter) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.presenter != nil {
		cm.presenter.Cancel()
	}
	cm.presenter = p
}

// stop cancels both the in-flight request and the typing animation.
// Safe to call multiple times or with nothing running.
func (cm *cancelManager) stop() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
		cm.cancelFunc = nil
	}
	if cm.presenter != nil {
		cm.presenter.Cancel()
	}
}

// finishRequest cancels the request context to release resources once a
// response (or error) has arrived.
func (cm *cancelManager) finishRequest() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
		cm.cancelFunc = nil
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the Dark AI backend.
//
// The backend speaks JSON over plain HTTP:
//
//	GET    /api/health                      liveness probe
//	POST   /api/chat                        send a message
//	GET    /api/history/{user}              recent conversations
//	DELETE /api/history/{user}/{chat}       delete a conversation
//	GET    /api/user/{user}                 profile
//	POST   /api/user                        create a named user
//	POST   /api/upgrade                     premium upgrade
//
// Every method returns *ClientError with a machine-readable type. The
// UI never shows these errors directly; it calls UserMessage at the
// presentation boundary to get the text a person should read.
package api

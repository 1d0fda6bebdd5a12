// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the delivery board.
//
// It wires the cobra command tree to the server adapter, keeps the session
// token on disk between invocations, and renders reports as terminal tables.
package client

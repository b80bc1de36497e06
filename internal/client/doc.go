// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the notes API.
//
// Each invocation runs one subcommand (register, login, notes, add, ...)
// against the remote API. The token of the last login is kept in a local
// session file so that later invocations are authenticated.
package client

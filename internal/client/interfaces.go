// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one CLI invocation. args[0] names the subcommand.
type Client interface {
	Run(ctx context.Context, args []string) error
}

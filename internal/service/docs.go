package service

import "context"

// DocsService defines the interface for building the documentation site.

type DocsService interface {
	// Build runs the project's documentation build script, leaving the
	// generated site in the working tree.
	Build(ctx context.Context) error
}

//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Mocks in internal/service/review and internal/transport/rest are produced by
// `go generate ./...` and need github.com/matryer/moq on PATH.

//go:build tools

package tools

// Tool dependencies that are not imported by the module.
//
// - github.com/pressly/goose/v3/cmd/goose is declared with the go.mod tool directive.
// - github.com/matryer/moq generates the *_mock_test.go files (see the go:generate lines).

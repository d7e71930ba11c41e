// Package interfaces defines service contracts for Advisor
package interfaces

import "context"

// GeminiClient is the external text-generation capability. The engine treats
// it as a single synchronous text-in/text-out call; timeout and retry policy
// live behind this interface.
type GeminiClient interface {
	// GenerateContent generates text from a prompt.
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// Close releases client resources.
	Close() error
}

package driving

import "context"

// CommandRunner executes editor command lines against the working mapping.
type CommandRunner interface {
	// Run parses and applies one command line.
	Run(ctx context.Context, line string) error

	// Usage lists the accepted commands.
	Usage() string
}

// Package connector wraps a user-supplied job function into a compliant
// connector command line with config, validate, and run subcommands, and owns
// the run lifecycle: logging, environment audit, configuration resolution,
// job invocation, result shaping, and the completion callback.
package connector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/connectorkit/connectorkit/runlog"
	"github.com/connectorkit/connectorkit/schema"
)

// JobFunc is the user job. It receives the validated settings instance and
// the start time of the last successful run (nil on a first run). The
// returned value, when it matches the callback payload shape, feeds the
// completion report.
type JobFunc func(ctx context.Context, cfg schema.Settings, since *int64) (any, error)

// Connector binds a settings model, credential models, defaults, and a job
// function into a runnable command surface.
type Connector struct {
	name        string
	settings    schema.SettingsModel
	credentials []schema.CredentialModel
	defaults    map[string]any
	job         JobFunc

	logFile    string
	stdout     io.Writer
	stderr     io.Writer
	httpClient *http.Client
}

// Option customizes a Connector.
type Option func(*Connector)

// WithCredentials binds the credential models the connector requires.
func WithCredentials(models ...schema.CredentialModel) Option {
	return func(c *Connector) { c.credentials = append(c.credentials, models...) }
}

// WithDefaults overrides the default values exposed by the config
// subcommand. When unset, the settings model's declared defaults are used.
func WithDefaults(defaults map[string]any) Option {
	return func(c *Connector) { c.defaults = defaults }
}

// WithName sets the command name shown in help output.
func WithName(name string) Option {
	return func(c *Connector) { c.name = name }
}

// WithLogFile overrides the run log file location.
func WithLogFile(path string) Option {
	return func(c *Connector) { c.logFile = path }
}

// WithOutput redirects stdout and stderr, primarily for tests.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Connector) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithHTTPClient overrides the callback HTTP client, primarily for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connector) { c.httpClient = client }
}

// New builds a connector around a settings model and a job function.
func New(settings schema.SettingsModel, job JobFunc, opts ...Option) *Connector {
	c := &Connector{
		name:     "connector",
		settings: settings,
		job:      job,
		logFile:  runlog.DefaultFileName,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.defaults == nil {
		c.defaults = settings.Defaults()
	}
	return c
}

// Command builds the connector's root command. Subcommands are registered
// through a static table rather than discovered.
func (c *Connector) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           c.name,
		Short:         "A marketplace connector job.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	for _, build := range []func() *cobra.Command{
		c.configCommand,
		c.validateCommand,
		c.runCommand,
	} {
		root.AddCommand(build())
	}
	return root
}

// Execute runs the command surface against os.Args and returns the process
// exit code: 0 success, 1 job or runtime failure, 2 configuration failure.
func (c *Connector) Execute() int {
	err := c.Command().Execute()
	if err == nil {
		return 0
	}
	code := ExitCode(err)
	if !silentError(err) {
		fmt.Fprintln(c.stderr, err)
	}
	return code
}

package connector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/connectorkit/connectorkit/schema"
)

// Environment variables honored by the run subcommand. Flags win over the
// environment.
const (
	EnvConfigJSON     = "CONFIG_JSON"
	EnvConfigFilename = "CONFIG_FILENAME"
	EnvJobID          = "JOB_ID"
	EnvCallbackURL    = "CALLBACK_URL"
	EnvLogLevel       = "LOG_LEVEL"
	EnvSince          = "SINCE"
)

func (c *Connector) configCommand() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the connector configuration descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor := schema.Describe(c.settings, c.credentials, c.defaults)
			var (
				raw []byte
				err error
			)
			if pretty || isTerminal(c.stdout) {
				raw, err = json.MarshalIndent(descriptor, "", "  ")
			} else {
				raw, err = json.Marshal(descriptor)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, string(raw))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty format the response")
	return cmd
}

func (c *Connector) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the connector settings and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.stdout, "validate is not yet implemented")
			return nil
		},
	}
}

func (c *Connector) runCommand() *cobra.Command {
	var (
		inlineJSON  string
		filename    string
		jobID       string
		callbackURL string
		logLevel    string
		since       int64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Invoke the connector job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(); err != nil {
				return err
			}
			opts := runOptions{
				inlineJSON:  stringOrEnv(cmd, "json", inlineJSON, EnvConfigJSON),
				filename:    stringOrEnv(cmd, "filename", filename, EnvConfigFilename),
				jobID:       stringOrEnv(cmd, "job-id", jobID, EnvJobID),
				callbackURL: stringOrEnv(cmd, "callback", callbackURL, EnvCallbackURL),
				logLevel:    stringOrEnv(cmd, "log-level", logLevel, EnvLogLevel),
			}
			if cmd.Flags().Changed("since") {
				opts.since = &since
			} else if raw := os.Getenv(EnvSince); raw != "" {
				if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
					opts.since = &v
				}
			}

			if code := c.run(cmd.Context(), opts); code != 0 {
				return &exitError{code: code, silent: true}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inlineJSON, "json", "j", "", "JSON config object as a string")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "config file (.json or .toml)")
	cmd.Flags().StringVarP(&jobID, "job-id", "J", "", "unique job id of this invocation")
	cmd.Flags().StringVarP(&callbackURL, "callback", "c", "", "URL to call back to on completion")
	cmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "logging verbosity for the job")
	cmd.Flags().Int64VarP(&since, "since", "s", 0, "start time of the last successful run")
	return cmd
}

func stringOrEnv(cmd *cobra.Command, flag, value, envKey string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return os.Getenv(envKey)
}

// loadDotEnv loads a .env file when one is present. A missing file is not an
// error.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return err
		}
	}
	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

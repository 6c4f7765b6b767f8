package connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/connectorkit/connectorkit/callback"
	"github.com/connectorkit/connectorkit/runlog"
	"github.com/connectorkit/connectorkit/schema"
)

// redactedMarker replaces secret values in the environment audit. The audit
// is log hygiene, not a security boundary.
const redactedMarker = "{{ HIDDEN }}"

type runOptions struct {
	inlineJSON  string
	filename    string
	jobID       string
	callbackURL string
	logLevel    string
	since       *int64
}

// run drives one job attempt to completion and returns the exit status:
// 0 success, 1 job or runtime failure, 2 configuration failure. Nothing
// escapes this boundary; every failure becomes a log line and a status code.
func (c *Connector) run(ctx context.Context, opts runOptions) int {
	level := slog.LevelInfo
	levelFromFlag := false
	if opts.logLevel != "" {
		if parsed, err := runlog.ParseLevel(opts.logLevel); err == nil {
			level = parsed
			levelFromFlag = true
		} else {
			fmt.Fprintln(c.stderr, err)
		}
	}

	logger, err := runlog.New(runlog.Config{Level: level, FilePath: c.logFile}, c.stderr)
	if err != nil {
		fmt.Fprintf(c.stderr, "logging setup failed: %v\n", err)
		return 1
	}
	defer logger.Close()
	log := logger.With("connector", c.name, "run_id", uuid.NewString())

	c.auditEnv(log)
	log.Info("logging to file", "path", logger.Path())

	status := 0
	cfg, err := c.Resolve(opts.inlineJSON, opts.filename)
	if err != nil {
		var verr *schema.ValidationError
		if errors.Is(err, ErrNoConfiguration) || errors.As(err, &verr) {
			log.Error("configuration rejected", "error", err)
			status = 2
		} else {
			log.Error("configuration could not be read", "error", err)
			status = 1
		}
	} else {
		if !levelFromFlag {
			if raw := cfg.String("log_level"); raw != "" {
				if parsed, perr := runlog.ParseLevel(raw); perr == nil {
					logger.SetLevel(parsed)
				}
			}
		}
		log.Debug("job input", "json", opts.inlineJSON, "filename", opts.filename)
		log.Info("job config resolved", "config", settingsJSON(cfg))
	}

	var result any
	if status == 0 {
		result, err = c.invokeJob(ctx, cfg, opts.since)
		if err != nil {
			log.Error("job run failed", "error", err)
			status = 1
		}
	}

	payload, shaped := callback.ShapePayload(result, status)
	if !shaped {
		log.Warn("job response does not match the callback payload shape", "response", fmt.Sprintf("%v", result))
	}
	c.dispatchCallback(ctx, log, opts, payload)

	return status
}

// auditEnv emits one debug line per environment variable, hiding any value
// whose name is a derived secret of a bound credential model.
func (c *Connector) auditEnv(log *slog.Logger) {
	hidden := make(map[string]bool)
	for _, cred := range c.credentials {
		for _, name := range cred.EnvSecrets() {
			hidden[name] = true
		}
	}
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if hidden[key] {
			value = redactedMarker
		}
		log.Debug("env var", "name", key, "value", value)
	}
}

// invokeJob contains the user job: an error return or a panic is converted
// into a job failure and never propagates past this boundary.
func (c *Connector) invokeJob(ctx context.Context, cfg schema.Settings, since *int64) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	if c.job == nil {
		return nil, errors.New("no job function registered")
	}
	return c.job(ctx, cfg, since)
}

// dispatchCallback posts the payload when both a job id and a callback URL
// were supplied; otherwise the skip is logged explicitly. Transport failures
// are logged and never change the already-decided exit status.
func (c *Connector) dispatchCallback(ctx context.Context, log *slog.Logger, opts runOptions, payload callback.Payload) {
	body, _ := json.Marshal(payload)
	if opts.jobID == "" || opts.callbackURL == "" {
		log.Warn("no callback initiated", "payload", string(body))
		return
	}

	client := callback.NewClient(opts.callbackURL, opts.jobID)
	if c.httpClient != nil {
		client.HTTPClient = c.httpClient
	}
	if err := client.Post(ctx, payload); err != nil {
		log.Error("callback delivery failed", "url", opts.callbackURL, "job_id", opts.jobID, "error", err)
		return
	}
	log.Info("callback delivered", "url", opts.callbackURL, "job_id", opts.jobID, "payload", string(body))
}

func settingsJSON(cfg schema.Settings) string {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%v", cfg)
	}
	return string(raw)
}

// Package imagebuild packages a connector project into a container image by
// shelling out to docker, streaming build output line by line.
package imagebuild

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/connectorkit/connectorkit/internal/scaffold"
)

// Options control one image build.
type Options struct {
	// Dir is the connector project directory.
	Dir string
	// Tag is the image tag.
	Tag string
	// Platform optionally targets a build platform, e.g. linux/amd64.
	Platform string
	// Cleanup removes the Dockerfile after the build. nil means automatic:
	// clean up only when the Dockerfile was generated by this build.
	Cleanup *bool
	// Output receives the streamed build output. Defaults to os.Stdout.
	Output io.Writer
}

// Build runs the container build, writing the template Dockerfile first when
// the project has none.
func Build(ctx context.Context, opts Options) error {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	dockerfile := filepath.Join(opts.Dir, "Dockerfile")

	generated := false
	if _, err := os.Stat(dockerfile); os.IsNotExist(err) {
		tmpl, terr := scaffold.Dockerfile()
		if terr != nil {
			return terr
		}
		if werr := os.WriteFile(dockerfile, tmpl, 0o644); werr != nil {
			return fmt.Errorf("write Dockerfile: %w", werr)
		}
		generated = true
	}

	cleanup := generated
	if opts.Cleanup != nil {
		cleanup = *opts.Cleanup
	}
	if cleanup {
		defer os.Remove(dockerfile)
	}

	args := []string{"build", "-t", opts.Tag}
	if opts.Platform != "" {
		args = append(args, "--platform", opts.Platform)
	}
	args = append(args, opts.Dir)

	cmd := exec.CommandContext(ctx, "docker", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start docker build: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error { return stream(stdout, opts.Output) })
	g.Go(func() error { return stream(stderr, opts.Output) })
	streamErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("docker build: %w", err)
	}
	return streamErr
}

func stream(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}

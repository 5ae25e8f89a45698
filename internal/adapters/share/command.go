// Package share provides the platform capabilities behind the share action:
// a native share target and two clipboards, tried in order by the
// application layer.
package share

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// maxStderr bounds the helper output kept for error messages.
const maxStderr = 512

// CommandSharer hands the payload to an external share helper.
// The text is written to the helper's stdin; title and URL are passed in the
// SHARE_TITLE and SHARE_URL environment variables.
type CommandSharer struct {
	command  []string
	lookPath func(string) (string, error)
	logger   *slog.Logger
}

// NewCommandSharer creates a sharer for the given argv.
// An empty command yields a sharer that is never available.
func NewCommandSharer(command []string, logger *slog.Logger) *CommandSharer {
	if logger == nil {
		logger = slog.Default()
	}

	return &CommandSharer{
		command:  command,
		lookPath: exec.LookPath,
		logger:   logger,
	}
}

// Available reports whether the helper resolves on PATH right now.
func (s *CommandSharer) Available() bool {
	if len(s.command) == 0 || strings.TrimSpace(s.command[0]) == "" {
		return false
	}

	_, err := s.lookPath(s.command[0])
	return err == nil
}

// Share runs the helper and waits for it. A non-zero exit, including the
// user dismissing the helper's dialog, is an error.
func (s *CommandSharer) Share(ctx context.Context, payload domain.SharePayload) error {
	if len(s.command) == 0 {
		return errors.New("no share command configured")
	}

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Stdin = strings.NewReader(payload.Text)
	cmd.Env = append(os.Environ(),
		"SHARE_TITLE="+payload.Title,
		"SHARE_URL="+payload.URL,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderr {
			msg = msg[:maxStderr]
		}
		if msg != "" {
			return fmt.Errorf("share command %q: %w: %s", s.command[0], err, msg)
		}
		return fmt.Errorf("share command %q: %w", s.command[0], err)
	}

	s.logger.DebugContext(ctx, "payload handed to share command",
		slog.String("command", s.command[0]))

	return nil
}

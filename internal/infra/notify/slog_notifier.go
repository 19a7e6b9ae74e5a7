// Package notify provides the user-facing notification surface for
// terminal clients.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"storefront/internal/domain/service"
)

// slogNotifier prints notifications for the user and mirrors them to
// the structured log.
type slogNotifier struct {
	out    io.Writer
	logger *slog.Logger
}

// NewNotifier is the constructor for the default Notifier.
func NewNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{out: os.Stdout, logger: logger}
}

func (n *slogNotifier) Success(message string) {
	fmt.Fprintf(n.out, "✔ %s\n", message)
	n.logger.Info("notification", slog.String("kind", "success"), slog.String("message", message))
}

func (n *slogNotifier) Error(message string) {
	fmt.Fprintf(n.out, "✖ %s\n", message)
	n.logger.Warn("notification", slog.String("kind", "error"), slog.String("message", message))
}

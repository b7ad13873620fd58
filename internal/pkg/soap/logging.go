package soap

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
)

// maxLoggedPayload limits how much of an envelope ends up in the log
const maxLoggedPayload = 48 * 1024

type loggingInterceptor struct {
	logger logger.Logger
	label  string
}

// NewLoggingInInterceptor logs every received message at info level
func NewLoggingInInterceptor(log logger.Logger) Interceptor {
	return &loggingInterceptor{logger: log, label: "Inbound Message"}
}

// NewLoggingOutInterceptor logs every sent message at info level
func NewLoggingOutInterceptor(log logger.Logger) Interceptor {
	return &loggingInterceptor{logger: log, label: "Outbound Message"}
}

func (l *loggingInterceptor) HandleMessage(_ context.Context, msg *Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n----------------------------\n", l.label)
	fmt.Fprintf(&b, "ID: %s\n", msg.ID)
	fmt.Fprintf(&b, "Address: %s\n", msg.Address)
	if msg.Operation != "" {
		fmt.Fprintf(&b, "Operation: %s\n", msg.Operation)
	}
	if msg.StatusCode != 0 {
		fmt.Fprintf(&b, "Response-Code: %d\n", msg.StatusCode)
	}
	fmt.Fprintf(&b, "Headers: %s\n", formatHeaders(msg.Header))

	payload := msg.Body
	truncated := len(payload) > maxLoggedPayload
	if truncated {
		payload = payload[:maxLoggedPayload]
	}
	fmt.Fprintf(&b, "Payload: %s", payload)
	if truncated {
		b.WriteString("\n(message truncated)")
	}
	b.WriteString("\n--------------------------------------")

	l.logger.Info(b.String())
	return nil
}

func formatHeaders(header http.Header) string {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		values := header[name]
		if http.CanonicalHeaderKey(name) == "Authorization" {
			values = []string{"****"}
		}
		parts = append(parts, fmt.Sprintf("%s=[%s]", name, strings.Join(values, ", ")))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

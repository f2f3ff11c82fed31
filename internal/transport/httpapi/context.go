package httpapi

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/thenoetrevino/fete/internal/logging"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// Key represents a context value key exported for reuse.
type Key string

const (
	KeyRemoteAddr Key = "remote_addr"
	KeyUserAgent  Key = "user_agent"
)

// Adapter converts fasthttp.RequestCtx into a stdlib context with deadlines and metadata.
type Adapter struct {
	timeout time.Duration
}

// NewAdapter constructs a new Adapter; a non-positive timeout means 5s.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach creates a context with the adapter timeout, tagged with the request id,
// and echoes that id in the response headers.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := requestID(ctx)
	stdCtx = logging.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set(HeaderRequestID, reqID)

	if remoteAddr := ctx.RemoteAddr(); remoteAddr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, remoteAddr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserAgent, ua)
	}

	return stdCtx, cancel
}

// requestID reuses a caller-supplied id or mints a new one
func requestID(ctx *fasthttp.RequestCtx) string {
	if header := string(ctx.Request.Header.Peek(HeaderRequestID)); strings.TrimSpace(header) != "" {
		return header
	}
	return uuid.NewString()
}

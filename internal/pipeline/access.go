package pipeline

import (
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// accessTimeLayout is ISO-8601 in UTC with millisecond precision.
const accessTimeLayout = "2006-01-02T15:04:05.000Z"

// NewAccessLogger creates a logger writing bare access lines of the form
// "[<time>] <message>" to w.
func NewAccessLogger(w io.Writer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "msg",
		EncodeTime:       encodeAccessTime,
		ConsoleSeparator: " ",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)

	return zap.New(core)
}

func encodeAccessTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.UTC().Format(accessTimeLayout) + "]")
}

func (p *Pipeline) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.access.Info(r.Method + " " + requestURI(r))
		next.ServeHTTP(w, r)
	})
}

// requestURI is the target as the client sent it. Requests not read from
// a connection, e.g. from the Lambda adapter, fall back to the URL.
func requestURI(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}

	return r.URL.RequestURI()
}

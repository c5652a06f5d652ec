package logging

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// WithLogData attaches a request-scoped LogData to the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request-scoped LogData, or nil when the request
// did not pass through RequestLogger.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// RequestLogger injects a LogData into each request's context and emits one
// structured line per request once the handler chain returns.
func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			if requestID, err := uuid.NewV4(); err == nil {
				logData.AddData("requestID", requestID.String())
			}
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			endTimer := logData.AddTiming("durationMs")
			next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			logData.Log().Info("Request.Complete")
		})
	}
}

package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time measures an operation and logs its duration on completion.
// Call with a deferred closure over the named error return:
//
//	defer obs.Time(ctx, "solve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			zap.L().Warn("operation failed",
				zap.String("req_id", reqID),
				zap.String("op", name),
				zap.Duration("dur", dur),
				zap.Error(*errp),
			)
			return
		}
		zap.L().Debug("operation done",
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Duration("dur", dur),
		)
	}
}

package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time logs the duration of an operation through the logger carried by ctx.
// Call the returned func with a pointer to the operation's named error.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		logger.Debug().Str("op", name).Dur("dur", dur).Msg("operation done")
	}
}

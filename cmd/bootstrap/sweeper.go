package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"stockcore/internal/pkg/config"
	"stockcore/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs a background ticker that removes expired holds. Reads
// already filter dead rows by expires_at, so the sweeper only reclaims
// storage; capacity is released the moment a hold's TTL lapses.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, reservations commands.ReservationCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Reservation.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						swept, err := reservations.SweepExpired(ctx)
						if err != nil {
							logger.Error("expired hold sweep failed", "error", err)
							continue
						}
						if swept > 0 {
							logger.Info("swept expired holds", "count", swept)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

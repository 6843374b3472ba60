package main

import (
	"context"
	"log"
	"time"

	"auctionBack/internal/services"
)

const (
	sweepInterval = 10 * time.Second
	sweepTimeout  = 30 * time.Second
)

// startAuctionSweeper runs the status sweep on a fixed interval: recruiting
// items whose window elapsed start their auction, running auctions past end
// time settle. The first sweep runs immediately so a restart does not leave
// overdue items waiting a full tick.
func startAuctionSweeper(ctx context.Context, svc *services.AuctionService, infoLog *log.Logger) {
	if svc == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
			svc.SweepOnce(runCtx, time.Now())
			cancel()
		}

		infoLog.Printf("auction sweeper: running every %s", sweepInterval)
		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}

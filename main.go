package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/goblog/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	application := app.New()
	<-application.Start()

	// the shutdown budget starts when the signal arrives, not at boot
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx)
}

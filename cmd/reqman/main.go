package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sharjeel-22/request-management-system/pkg/reqman"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
)

func main() {

	//you may do your own logger setup here or use this default one with slog
	reqman.SetupLogger()

	app, err := reqman.Setup(core.NewRealClock())
	if err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Request management core ready",
		"workflows", app.Workflows.Summary().TotalWorkflows,
		"admin_requests", app.AdminRequests.Summary().Total,
		"payments_pending", app.FinanceRequests.Summary().Pending,
	)

	app.Run(ctx)
}

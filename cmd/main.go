package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/kader009/foodlane-server/config"
	"github.com/kader009/foodlane-server/routes"
	"github.com/kader009/foodlane-server/services"
	"github.com/kader009/foodlane-server/utils"

	"github.com/lmittmann/tint"
)

const pendingPaymentMaxAge = 30 * time.Minute

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen}),
	))

	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var mailer *utils.Mailer
	if os.Getenv("SES_EMAIL") != "" {
		if mailer, err = utils.NewMailer(ctx); err != nil {
			slog.Error("mailer init failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("SES_EMAIL not set, receipt email disabled")
	}

	var uploader *utils.S3Uploader
	if os.Getenv("S3_BUCKET") != "" {
		if uploader, err = utils.NewS3Uploader(ctx); err != nil {
			slog.Error("S3 init failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("S3_BUCKET not set, image upload disabled")
	}

	hub := services.NewOrderHub()
	users := services.NewUserService(db)
	foods := services.NewFoodService(db, uploader)
	orders := services.NewOrderService(db, hub)
	payments := services.NewPaymentService(db, hub, mailer, slog.Default())
	gateway := services.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))

	// reconcile payments left pending by a crash mid-settlement
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for range t.C {
			if _, err := payments.SweepPending(pendingPaymentMaxAge); err != nil {
				slog.Error("pending payment sweep failed", "error", err)
			}
		}
	}()

	r := routes.SetupRouter(routes.Deps{
		Users:    users,
		Foods:    foods,
		Orders:   orders,
		Payments: payments,
		Gateway:  gateway,
		Hub:      hub,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	slog.Info("restaurant server is on", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// File: tradecall/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradecall/config"
	"tradecall/cron"
	"tradecall/database"
	bookingRepo "tradecall/database/repository/booking"
	webhookEventRepo "tradecall/database/repository/webhookevent"
	"tradecall/handlers"
	"tradecall/middleware"
	"tradecall/routes"
	"tradecall/services/booking"
	"tradecall/services/notification"
	"tradecall/services/payment"
	"tradecall/services/suggest"
	"tradecall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	webhookEvents := webhookEventRepo.NewMongoWebhookEventRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := webhookEvents.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create webhook event indexes: %v", err)
	}

	// services.
	mailer := notification.NewResendMailer(logger)

	addressIndex := suggest.NewIndex(utils.GetSuggestClient())
	suggestSource := &suggest.MergedSource{
		Local:  addressIndex,
		Remote: suggest.NewGooglePlacesClient(config.AppConfig.GoogleAPIKey, config.AppConfig.SuggestCountry),
		Limit:  5,
		Logger: logger,
	}

	reminderScheduler := cron.NewReminderScheduler()
	cron.InitReminderWorker(mailer)

	bookingService := &booking.DefaultBookingService{
		Repo:      bookings,
		Mailer:    mailer,
		Addresses: addressIndex,
		Reminders: reminderScheduler,
		BaseURL:   config.AppConfig.PublicBaseURL,
		Logger:    logger,
	}

	paymentService := &payment.DefaultPaymentService{
		Bookings:           bookings,
		Events:             webhookEvents,
		Gateway:            payment.NewStripeGateway(logger),
		Mailer:             mailer,
		AttendanceFeeCents: config.AppConfig.AttendanceFeeCents,
		Currency:           config.AppConfig.Currency,
		Logger:             logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	webhookHandler := handlers.NewWebhookHandler(paymentService, config.AppConfig.StripeWebhookSecret, logger)
	suggestHandler := handlers.NewSuggestHandler(suggestSource, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:  bookingHandler.CreateBooking,
		NotifyOffice:   bookingHandler.NotifyOffice,
		StripeWebhook:  webhookHandler.HandleStripeEvent,
		GetSuggestions: suggestHandler.GetSuggestions,
		ListBookings:   bookingHandler.ListBookings,
		GetBooking:     bookingHandler.GetBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSuggestClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

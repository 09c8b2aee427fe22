package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/obx0x3/empathy-dementia/pkg/ai"
	"github.com/obx0x3/empathy-dementia/pkg/ai/modelserver"
	"github.com/obx0x3/empathy-dementia/pkg/config"
	"github.com/obx0x3/empathy-dementia/pkg/logging"
	"github.com/obx0x3/empathy-dementia/pkg/reply"
	"github.com/obx0x3/empathy-dementia/pkg/server"
)

func main() {
	envs, _ := config.LoadConfig(true)

	logger := logging.NewLogger(os.Stdout, envs.LogFormat, envs.LogLevel)
	factory := logging.NewFactory(logger)

	var primary ai.Generator
	if envs.ModelServerURL != "" {
		client := modelserver.NewClient(envs.ModelServerURL, factory.ForClient("model-server"))
		if err := client.WaitReady(context.Background(), envs.ModelServerWait); err != nil {
			logger.Warn("Model server not ready yet, continuing", "url", envs.ModelServerURL, "error", err)
		} else {
			logger.Info("Model server ready", "url", envs.ModelServerURL)
		}
		primary = client
	}

	var fallback ai.Generator
	if envs.CompletionsAPIKey != "" {
		remote := ai.NewRateLimitedGenerator(
			ai.NewOpenAIGenerator(factory.ForClient("openai"), envs.CompletionsAPIKey, envs.CompletionsAPIURL, envs.CompletionsModel),
			envs.CompletionsRPM,
			time.Minute,
		)
		defer remote.Stop()
		fallback = remote
		logger.Info("OpenAI generator initialized as fallback", "model", envs.CompletionsModel, "requests_per_minute", envs.CompletionsRPM)
	}

	if primary == nil && fallback == nil {
		logger.Error("Neither MODEL_SERVER_URL nor COMPLETIONS_API_KEY is configured")
		panic(errors.New("No text generation service available"))
	}

	generator := ai.NewFallbackGenerator(factory.ForService("generator"), primary, fallback)
	replyService := reply.NewService(generator, factory.ForService("reply"))
	srv := server.New(replyService, factory, generator.Mode())

	httpServer := &http.Server{
		Addr:              ":" + envs.ServerPort,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting reply server", "address", httpServer.Addr, "mode", generator.Mode())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			panic(errors.Wrap(err, "Unable to start server"))
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan
	logger.Info("Reply server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

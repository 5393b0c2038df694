package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/syam1133/portfolio-assistant/internal/config"
	"github.com/syam1133/portfolio-assistant/internal/handler"
	"github.com/syam1133/portfolio-assistant/internal/model/profile"
	"github.com/syam1133/portfolio-assistant/internal/responder"
	"github.com/syam1133/portfolio-assistant/internal/responder/local"
	"github.com/syam1133/portfolio-assistant/internal/responder/remote"
	contactService "github.com/syam1133/portfolio-assistant/internal/service/contact"
	"github.com/syam1133/portfolio-assistant/internal/service/conversation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	prof := profile.Seed()

	// The responder strategy is selected exactly once, from credential
	// presence at startup, and never re-evaluated per message.
	var rsp responder.Responder
	if cfg.Assistant.Enabled() {
		chatModel, err := cfg.Assistant.NewChatModel(ctx)
		if err != nil {
			log.Fatalf("failed to initialize chat model: %v", err)
		}

		rsp, err = remote.New(ctx, chatModel, remote.BuildSystemPrompt(prof))
		if err != nil {
			log.Fatalf("failed to initialize remote responder: %v", err)
		}
		log.Printf("completion credential found, assistant running in remote mode (model=%s)", cfg.Assistant.Model)
	} else {
		rsp = local.New(cfg.Assistant.LocalDelay)
		log.Println("no completion credential configured, assistant running in local keyword mode")
	}

	convSvc := conversation.NewService(rsp, cfg.Assistant.Mode(), prof.Greeting)

	var contactSvc *contactService.Service
	if cfg.Contact.Enabled() {
		contactSvc = contactService.NewService(cfg.Contact.AccessKey, cfg.Contact.Endpoint)
		log.Println("contact relay configured")
	} else {
		log.Println("contact relay access key not configured, skipping contact endpoint")
	}

	router := handler.NewRouter(convSvc, contactSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio assistant backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

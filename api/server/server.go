package server

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/your-org/ai-debate-team/api/handlers"
	"github.com/your-org/ai-debate-team/config"
	"github.com/your-org/ai-debate-team/debate/team"
	"github.com/your-org/ai-debate-team/debate/workflow"
)

// Server represents the debate team server
type Server struct {
	handler   http.Handler
	Team      *team.Team
	Workflow  *workflow.Manager
	listeners []net.Listener
	log       zerolog.Logger
}

// NewServer creates a new server instance wired to a debate team
func NewServer(cfg *config.Config, log zerolog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	wf := workflow.New(workflow.Options{
		Model:        cfg.Model,
		MaxExchanges: cfg.MaxExchanges,
		Logger:       log,
	})

	server := &Server{
		Workflow: wf,
		Team: team.New(team.Options{
			Model:     cfg.Model,
			Workflow:  wf,
			SessionDB: cfg.SessionDB,
			Logger:    log,
		}),
		log: log,
	}

	if err := server.setupHTTPServer(cfg.ServerAddress); err != nil {
		return nil, fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	return server, nil
}

// setupHTTPServer configures the HTTP server with routes and middleware
func (s *Server) setupHTTPServer(address string) error {
	chatHandler := handlers.NewChatHandler(s.Team)
	debateHandler := handlers.NewDebateHandler(s.Workflow)
	agentHandler := handlers.NewAgentHandler()

	mux := http.NewServeMux()

	// Conversational entry point (greeter first, debate on topic capture)
	mux.HandleFunc("/chat", chatHandler.Chat)

	// One-shot debates on an explicit topic
	mux.HandleFunc("/debates", debateHandler.RunDebate)

	// Team roster
	mux.HandleFunc("/agents", agentHandler.ListAgents)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status": "healthy"}`)); err != nil {
			http.Error(w, "Failed to write response", http.StatusInternalServerError)
			return
		}
	})

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	// Logging middleware
	loggingHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			s.log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}

	// Wrap handlers with middleware
	s.handler = corsHandler(loggingHandler(mux))

	// Set up dual-stack listeners
	return s.setupListeners(address)
}

// setupListeners creates IPv4 and IPv6 listeners
func (s *Server) setupListeners(address string) error {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("invalid address format: %w", err)
	}

	// IPv4 listener
	ipv4Listener, err := net.Listen("tcp4", "127.0.0.1:"+port)
	if err != nil {
		return fmt.Errorf("failed to create IPv4 listener: %w", err)
	}
	s.listeners = append(s.listeners, ipv4Listener)

	// IPv6 listener
	ipv6Listener, err := net.Listen("tcp6", "[::1]:"+port)
	if err != nil {
		s.log.Warn().Err(err).Msg("IPv6 bind failed (continuing with IPv4 only)")
	} else {
		s.listeners = append(s.listeners, ipv6Listener)
	}

	return nil
}

// Handler exposes the configured handler chain (for testing)
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the server and blocks until shutdown signal
func (s *Server) Start() error {
	if len(s.listeners) == 0 {
		return fmt.Errorf("no listeners configured")
	}

	_, port, err := net.SplitHostPort(s.listeners[0].Addr().String())
	if err != nil {
		return fmt.Errorf("failed to parse listener address: %w", err)
	}

	s.log.Info().Str("port", port).Msg("starting debate team server")
	s.log.Info().Msg("  POST /chat - Converse with the debate team")
	s.log.Info().Msg("  POST /debates - Run a one-shot debate on a topic")
	s.log.Info().Msg("  GET /agents - List the debate team roster")
	s.log.Info().Msg("  GET /health - Health check")

	// Start listeners in separate goroutines
	serverErr := make(chan error, len(s.listeners))
	var wg sync.WaitGroup

	for i, listener := range s.listeners {
		wg.Add(1)
		go func(l net.Listener, index int) {
			defer wg.Done()
			networkType := "IPv4"
			if index > 0 {
				networkType = "IPv6"
			}
			s.log.Info().Str("network", networkType).Stringer("addr", l.Addr()).Msg("listener started")

			if err := http.Serve(l, s.handler); err != nil && err != http.ErrServerClosed {
				serverErr <- fmt.Errorf("%s server failed: %w", networkType, err)
			}
		}(listener, i)
	}

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		s.log.Error().Err(err).Msg("shutting down server due to error")
		return err
	case <-quit:
		s.log.Info().Msg("shutting down server")
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	// Give outstanding requests 5 seconds to complete
	time.Sleep(5 * time.Second)

	var shutdownErrors []error

	for _, listener := range s.listeners {
		if tcpListener, ok := listener.(*net.TCPListener); ok {
			if err := tcpListener.Close(); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("failed to close listener %s: %w", listener.Addr(), err))
			}
		}
	}

	time.Sleep(100 * time.Millisecond)

	if len(shutdownErrors) > 0 {
		for _, err := range shutdownErrors {
			s.log.Error().Err(err).Msg("shutdown error")
		}
		return fmt.Errorf("server shutdown completed with errors: %v", shutdownErrors[0])
	}

	s.log.Info().Msg("server exited")
	return nil
}

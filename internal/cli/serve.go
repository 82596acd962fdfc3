package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wallyfaq/config"
	"wallyfaq/internal/handler"
	"wallyfaq/internal/watcher"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bot over HTTP",
	Long: `Starts an HTTP server with:
  POST /answer   {"text": "..."}                    -> {"text": "...", "confidence": 0.42}
  POST /train    {"question": "...", "answer": "..."}
  GET  /healthz

With --watch (file backend only) the knowledge base is reloaded when the
file is edited by another process.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (env HTTP_ADDR, default :8080)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the knowledge base file on external changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if bot == nil {
		return errBotNotConfigured
	}
	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("erro ao iniciar o servidor em %s: %w", addr, err)
	}
	return serve(ctx, ln)
}

func serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           handler.NewMux(bot, bot.Store(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("servidor iniciado", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("erro no servidor http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if serveWatch {
		if cfg.Backend != config.BackendFile {
			logger.Warn("--watch so vale para o backend file", zap.String("backend", cfg.Backend))
		} else {
			fw := watcher.New(cfg.KBFile, bot.Store(), 0, logger)
			g.Go(func() error {
				return fw.Run(gctx)
			})
		}
	}

	return g.Wait()
}

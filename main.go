package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"qr-scanner-server/internal/handlers"
	"qr-scanner-server/internal/preset"
	"qr-scanner-server/internal/qrgen"
)

const (
	presetFile  = "qr-data.json"
	artifactDir = "qr-images"
)

// requiredFiles are the scanner app assets that must exist in the serve
// directory; without them the server is pointless, so startup aborts.
var requiredFiles = []string{"index.html", "style.css", "script.js", presetFile}

func main() {
	port := flag.Int("port", 8000, "port to run the server on")
	host := flag.String("host", "localhost", "host to bind to")
	dir := flag.String("dir", ".", "directory containing the scanner app files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := os.Chdir(*dir); err != nil {
		logger.Error("cannot enter serve directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	var missing []string
	for _, f := range requiredFiles {
		if _, err := os.Stat(f); err != nil {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		logger.Error("missing required files", "files", strings.Join(missing, ", "))
		os.Exit(1)
	}

	store := preset.NewStore(presetFile)
	encoder := qrgen.NewPNGEncoder()

	// Pre-generate all preset images before accepting connections. Failure
	// is non-fatal: every indexed request then falls back to inline encoding.
	pre := qrgen.NewPregenerator(store, encoder, artifactDir, logger)
	if n, err := pre.Run(); err != nil {
		logger.Error("qr pre-generation skipped", "error", err)
	} else {
		logger.Info("qr images pre-generated", "count", n, "dir", artifactDir)
	}

	gin.SetMode(gin.ReleaseMode)
	h := handlers.New(store, encoder, ".", artifactDir)
	router := handlers.RegisterRoutes(h)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	localURL := fmt.Sprintf("http://%s", addr)
	if *host == "0.0.0.0" || *host == "" {
		localURL = fmt.Sprintf("http://localhost:%d", *port)
	}

	srv := &http.Server{Addr: addr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("qr scanner server listening", "addr", addr, "url", localURL)
	if err := openBrowser(localURL); err != nil {
		logger.Info("open the URL manually in your browser", "url", localURL)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server error", "error", err)
		os.Exit(1)
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		logger.Info("server stopped")
	}
}

// openBrowser makes a best-effort attempt to open url in the default
// browser. Failure only means the user opens it by hand.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

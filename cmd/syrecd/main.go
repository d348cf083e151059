// Command syrecd runs the synthesis service as an HTTP daemon: POST a
// PLA file to /api/synthesize/pla, then fetch /api/circuits/:id/qasm
// or /api/circuits/:id/img for the synthesized result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kegliz/syrecgo/internal/config"
	"github.com/kegliz/syrecgo/internal/server"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to a config file (optional; env vars and defaults always apply)")
	flag.Parse()

	c, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "syrecd: loading config: %v\n", err)
		os.Exit(1)
	}

	srv, err := server.NewServer(server.Options{Config: c, Version: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "syrecd: %v\n", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(c.GetInt("http_port"), c.GetBool("http_local_only"))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "syrecd: %v\n", err)
			os.Exit(1)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "syrecd: shutdown: %v\n", err)
			os.Exit(1)
		}
	}
}

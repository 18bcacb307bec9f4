package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/mockapi"
)

type mockAPIOptions struct {
	addr     string
	fixtures string
	bare     bool
	latency  time.Duration
	images   int
}

func newMockAPICmd(flags *rootFlags) *cobra.Command {
	opts := &mockAPIOptions{}

	cmd := &cobra.Command{
		Use:   "mock-api",
		Short: "Serve a local stand-in for the image search backend",
		Long: `Serve GET /get_image and GET /health from a fixture catalog.

Use --bare to answer with a plain JSON array and --latency to slow every search down.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMockAPI(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8080", "Address to listen on")
	cmd.Flags().StringVar(&opts.fixtures, "fixtures", "", "YAML file with the catalog items")
	cmd.Flags().BoolVar(&opts.bare, "bare", false, "Respond with a bare JSON array")
	cmd.Flags().DurationVar(&opts.latency, "latency", 0, "Artificial delay for every search")
	cmd.Flags().IntVar(&opts.images, "images", 200, "Number of generated images when no fixtures are given")

	return cmd
}

func runMockAPI(cmd *cobra.Command, flags *rootFlags, opts *mockAPIOptions) error {
	level := flags.logLevel
	if level == "" {
		level = "info"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "mock_api",
	})
	if err != nil {
		return newCommandError("start mock api", "logger", err, "Use one of debug, info, warn, error.")
	}

	catalog := mockapi.GenerateCatalog(opts.images)
	if opts.fixtures != "" {
		catalog, err = mockapi.LoadCatalog(opts.fixtures)
		if err != nil {
			return newCommandError("start mock api", opts.fixtures, err, "Provide a YAML list of items with image_id, image_url and score.")
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mockapi.New(mockapi.Options{
		Catalog: catalog,
		Bare:    opts.bare,
		Latency: opts.latency,
		Logger:  log,
	})

	if err := server.ListenAndServe(ctx, opts.addr); err != nil {
		return newCommandError("serve mock api", opts.addr, err, "Pick a free address with --addr.")
	}

	log.Info("mock api stopped")
	return nil
}

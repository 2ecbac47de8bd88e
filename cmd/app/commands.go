package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yanqian/yt-summarizer/internal/domain/pipeline"
	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/domain/youtube"
	"github.com/yanqian/yt-summarizer/internal/infra/config"
	"github.com/yanqian/yt-summarizer/pkg/logger"
)

type rootOptions struct {
	configPath string
	addr       string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "yt-summarizer",
		Short:         "Summarize YouTube videos from their transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default: $CONFIG_PATH or configs/config.yaml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP server.

Endpoints:
  GET /summarize?url=<youtube-url>  - Topic and summary for a video
  GET /health                       - Health check
  GET /history?limit=<n>            - Recent summarize requests
  GET /metrics                      - Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, overrides http.address")

	summarizeCmd := &cobra.Command{
		Use:   "summarize <youtube-url>",
		Short: "Fetch the transcript and print the topic and summary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd.Context(), opts, args[0], cmd.OutOrStdout())
		},
	}

	transcriptCmd := &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Fetch and print the transcript only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscript(cmd.Context(), opts, args[0], cmd.OutOrStdout())
		},
	}

	root.AddCommand(serveCmd, summarizeCmd, transcriptCmd)
	return root
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.configPath != "" {
		if err := os.Setenv("CONFIG_PATH", opts.configPath); err != nil {
			return nil, fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.addr != "" {
		cfg.HTTP.Address = opts.addr
	}
	return cfg, nil
}

func runServe(ctx context.Context, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	app, cleanup, err := initializeApp(cfg, logger.New())
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	defer cleanup()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("application stopped with error: %w", err)
	}
	return nil
}

func runSummarize(ctx context.Context, opts *rootOptions, rawURL string, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	runner, cleanup, err := initializePipeline(cfg, logger.NewWithWriter(os.Stderr))
	if err != nil {
		return fmt.Errorf("failed to wire pipeline: %w", err)
	}
	defer cleanup()

	report := runner.Run(ctx, rawURL)
	return writeJSON(out, report.Result)
}

func runTranscript(ctx context.Context, opts *rootOptions, rawURL string, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return writeJSON(out, summarizer.Result{TopicName: pipeline.TopicURLError, TopicSummary: err.Error()})
	}

	transcripts := initializeTranscripts(cfg, logger.NewWithWriter(os.Stderr))
	text, ok := transcripts.Fetch(ctx, videoID)
	if !ok || text == "" {
		return writeJSON(out, summarizer.Result{TopicName: pipeline.TopicTranscriptError, TopicSummary: pipeline.TranscriptErrorMessage})
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

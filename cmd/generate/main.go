package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/suitcasegen/internal/aigen"
	"github.com/youruser/suitcasegen/internal/batch"
	"github.com/youruser/suitcasegen/internal/catalog"
	"github.com/youruser/suitcasegen/internal/config"
	imagepkg "github.com/youruser/suitcasegen/internal/image"
	"github.com/youruser/suitcasegen/internal/logging"
	"github.com/youruser/suitcasegen/internal/util"
)

type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: cfg, logger: logger}
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("generate failed", zap.Error(err))
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	var width, height int
	root := &cobra.Command{
		Use:   "generate <text> <output_path> [color] [size]",
		Short: "Draw suitcase placeholder images",
		Long: "Draws a suitcase placeholder with a \"name|id\" caption. Width and height default to\n" +
			"the reference image size. Use \"generate all\" for the catalog batch and\n" +
			"\"generate ai\" for hosted-model photos.",
		Args:          cobra.RangeArgs(2, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			color, size := "", ""
			if len(args) > 2 {
				color = args[2]
			}
			if len(args) > 3 {
				size = args[3]
			}
			return a.single(cmd.Context(), args[0], args[1], color, size, width, height)
		},
	}
	root.Flags().IntVar(&width, "width", 0, "canvas width in pixels (default: reference image width)")
	root.Flags().IntVar(&height, "height", 0, "canvas height in pixels (default: reference image height)")

	root.AddCommand(a.allCmd(), a.aiCmd())
	return root
}

func (a *app) allCmd() *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "all [catalog_path]",
		Short: "Generate placeholders for every catalog product without an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.loadCatalog(args)
			if err != nil {
				return err
			}
			w, h := a.referenceSize(cmd.Context())

			opts := batch.PlaceholderOptions(a.cfg.ItemsDir, start)
			opts.Logger = a.logger
			producer := batch.PlaceholderProducer{Renderer: a.renderer(), Width: w, Height: h}

			rep, err := batch.NewRunner(producer, opts).Run(cmd.Context(), products)
			a.logReport(rep)
			return err
		},
	}
	cmd.Flags().IntVar(&start, "start", a.cfg.StartIndex, "index of the first catalog entry to process")
	return cmd
}

func (a *app) aiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai [catalog_path]",
		Short: "Fetch product photos from the hosted image model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireAIToken(); err != nil {
				return err
			}
			products, err := a.loadCatalog(args)
			if err != nil {
				return err
			}
			client := aigen.New(aigen.Options{
				APIURL:     a.cfg.HFAPIURL,
				Token:      a.cfg.HFToken,
				HTTPClient: util.NewHTTPClient(a.cfg.HTTPTimeout),
				Logger:     a.logger,
			})

			opts := batch.AIOptions(a.cfg.ItemsDir, a.cfg.AIDelay)
			opts.Logger = a.logger
			rep, err := batch.NewRunner(batch.AIProducer{Client: client}, opts).Run(cmd.Context(), products)
			a.logReport(rep)
			return err
		},
	}
}

func (a *app) single(ctx context.Context, text, output, color, size string, width, height int) error {
	if width <= 0 || height <= 0 {
		width, height = a.referenceSize(ctx)
	}
	spec := imagepkg.NewRenderSpec(text, color, size, width, height)
	res, path, err := a.renderer().Generate(spec, a.cfg.AssetsDir, output)
	if err != nil {
		return err
	}
	a.logger.Info("saved",
		zap.String("path", path),
		zap.Int64("seed", res.Seed),
		zap.Int("font_size", res.Text.FontSize),
		zap.Bool("overflow", res.Text.Overflow))
	return nil
}

func (a *app) renderer() *imagepkg.Renderer {
	fonts, _ := imagepkg.ProbeFont(a.cfg.FontPath)
	return imagepkg.NewRenderer(imagepkg.Options{
		Fonts:   fonts,
		QRBadge: a.cfg.QRBadge,
		Logger:  a.logger,
	})
}

func (a *app) referenceSize(ctx context.Context) (int, int) {
	return imagepkg.ReferenceSize(ctx, util.NewHTTPClient(a.cfg.HTTPTimeout), a.cfg.ReferenceImage, a.logger)
}

func (a *app) loadCatalog(args []string) ([]catalog.Product, error) {
	path := a.cfg.CatalogPath
	if len(args) > 0 {
		path = args[0]
	}
	return catalog.LoadCatalog(path)
}

func (a *app) logReport(rep batch.Report) {
	a.logger.Info("batch finished",
		zap.Int("generated", rep.Generated),
		zap.Int("skipped", rep.Skipped),
		zap.Int("failed", rep.Failed))
}

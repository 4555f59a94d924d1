package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aouyang1/artgallery/api"
	"github.com/aouyang1/artgallery/api/client"
	"github.com/aouyang1/artgallery/assets"
	"github.com/aouyang1/artgallery/config"
	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/store"
	"github.com/aouyang1/artgallery/tui"
)

const prefetchTimeout = 30 * time.Minute

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:          "artgallery",
		Short:        "Browse a fixed collection of five artworks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				v.SetConfigFile(path)
			}
			return nil
		},
	}
	root.PersistentFlags().String("config", "", "config file (TOML)")
	root.PersistentFlags().String("root-path", "", "directory for the database and image cache")
	_ = v.BindPFlag("root_path", root.PersistentFlags().Lookup("root-path"))

	root.AddCommand(
		newServeCmd(v),
		newTUICmd(v),
		newCatalogCmd(),
		newWalkCmd(),
	)
	return root
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery screen over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if cfg.Server.Mode == gin.DebugMode {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().String("mode", "", "gin mode: debug, release or test")
	cmd.Flags().String("images-dir", "", "directory overriding the bundled images")
	_ = v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("server.mode", cmd.Flags().Lookup("mode"))
	_ = v.BindPFlag("images.dir", cmd.Flags().Lookup("images-dir"))
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	database, err := store.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	bundle, err := gallery.LoadBundle()
	if err != nil {
		return err
	}
	if err := database.SeedCatalog(ctx, bundle); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	catalog, err := database.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("catalog ready", "artworks", catalog.Len(), "db", cfg.Database.Path)

	images, err := imageSource(ctx, cfg, catalog)
	if err != nil {
		return err
	}

	screens, err := api.NewScreenRegistry(catalog, cfg.Server.MaxScreens)
	if err != nil {
		return err
	}
	return api.NewWebServer(database, screens, images, cfg.Server.Mode).Start(ctx, cfg.Server.Addr)
}

// imageSource chains the configured image locations in front of the bundled
// images: local directory first, then S3.
func imageSource(ctx context.Context, cfg config.Config, catalog *gallery.Catalog) (assets.Source, error) {
	var chain assets.Chain

	if cfg.Images.Dir != "" {
		local, err := assets.NewLocalSource(cfg.Images.Dir)
		if err != nil {
			return nil, err
		}
		if _, err := local.Missing(catalog); err != nil {
			return nil, err
		}
		chain = append(chain, local)
	}

	if cfg.Images.S3.Bucket != "" {
		remote, err := assets.NewS3Source(ctx, assets.S3Config{
			Profile:  cfg.Images.S3.Profile,
			Region:   cfg.Images.S3.Region,
			Bucket:   cfg.Images.S3.Bucket,
			Prefix:   cfg.Images.S3.Prefix,
			CacheDir: cfg.Images.S3.CacheDir,
		})
		if err != nil {
			return nil, err
		}
		go func() {
			ctx, cancel := context.WithTimeout(ctx, prefetchTimeout)
			defer cancel()
			if _, err := remote.Prefetch(ctx, catalog); err != nil {
				slog.Warn("error while prefetching s3 images", "error", err)
			}
		}()
		chain = append(chain, remote)
	}

	chain = append(chain, assets.NewEmbeddedSource())
	return chain, nil
}

func newTUICmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Show the gallery screen in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			catalog, err := gallery.LoadBundle()
			if err != nil {
				return err
			}
			return tui.Run(catalog, cfg.TUI.Log)
		},
	}
	cmd.Flags().String("log", "", "file to write logs to while the screen is open")
	_ = v.BindPFlag("tui.log", cmd.Flags().Lookup("log"))
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the artworks in selection order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if server == "" {
				catalog, err := gallery.LoadBundle()
				if err != nil {
					return err
				}
				for i, a := range catalog.All() {
					fmt.Fprintf(out, "%d. %s by %s (%s)\n", i+1, a.Title, a.Creator, a.CreatedAt)
				}
				return nil
			}

			list, err := client.NewGalleryClient(server).GetArtworks(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range list.Artworks {
				fmt.Fprintf(out, "%d. %s by %s (%s)\n", a.Selection, a.Title, a.Creator, a.CreatedAt)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "read the catalog from a running server instead of the bundle")
	return cmd
}

func newWalkCmd() *cobra.Command {
	var (
		server    string
		steps     int
		direction string
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Activate a screen on a server and click through it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if direction != "next" && direction != "previous" {
				return fmt.Errorf("direction must be next or previous, got %q", direction)
			}
			if steps < 0 {
				return errors.New("steps must not be negative")
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			gc := client.NewGalleryClient(server)

			screen, err := gc.NewScreen(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d %s\n", screen.View.Selection, screen.View.Title)

			for range steps {
				if direction == "next" {
					screen, err = gc.Next(ctx, screen.ScreenID)
				} else {
					screen, err = gc.Previous(ctx, screen.ScreenID)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d %s\n", screen.View.Selection, screen.View.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "gallery server URL")
	cmd.Flags().IntVar(&steps, "steps", gallery.Size, "number of clicks")
	cmd.Flags().StringVar(&direction, "direction", "next", "next or previous")
	return cmd
}

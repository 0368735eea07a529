package main

import (
	"context"
	"fmt"
	"os"

	"github.com/genricoloni/musicard/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "musicard",
		Short:        "Render now-playing music cards",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(newRenderCmd(&debug), newWatchCmd(&debug))
	return root
}

func newRenderCmd(debug *bool) *cobra.Command {
	var (
		flags       cardFile
		optionsPath string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single card to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := cardFile{}
			if optionsPath != "" {
				loaded, err := loadCardFile(optionsPath)
				if err != nil {
					return err
				}
				values = loaded
			}
			values.override(flags, cmd.Flags().Changed)

			var renderer domain.CardRenderer
			app := fx.New(
				loggerOptions(*debug),
				AppOptions,
				fx.Populate(&renderer),
			)
			if err := app.Err(); err != nil {
				return err
			}

			png, err := renderer.Render(cmd.Context(), values.options())
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(png)
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("failed to write card: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&optionsPath, "options", "", "YAML file with card options; flags override it")
	f.StringVarP(&out, "out", "o", "musicard.png", `output file, "-" for stdout`)

	f.Float64Var(&flags.progressValue, "progress", 10, "progress percentage (10-100)")
	f.Float64Var(&flags.darknessValue, "image-darkness", 10, "background image overlay darkness (0-100)")
	f.StringVar(&flags.Name, "name", "", "track name")
	f.StringVar(&flags.Author, "author", "", "author line")
	f.StringVar(&flags.StartTime, "start-time", "", "elapsed time label")
	f.StringVar(&flags.EndTime, "end-time", "", "total time label")
	f.StringVar(&flags.ThumbnailImage, "thumbnail", "", "thumbnail image (URL, data URI or path)")
	f.StringVar(&flags.BackgroundImage, "background", "", "background image (URL, data URI or path)")
	f.StringVar(&flags.ProgressBarColor, "progress-bar-color", "", "track colour")
	f.StringVar(&flags.ProgressColor, "progress-color", "", "filled track and knob colour")
	f.StringVar(&flags.BackgroundColor, "background-color", "", "panel colour")
	f.StringVar(&flags.NameColor, "name-color", "", "name colour")
	f.StringVar(&flags.AuthorColor, "author-color", "", "author colour")
	f.StringVar(&flags.TimeColor, "time-color", "", "time label colour")

	return cmd
}

func newWatchCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep a card of the playing track up to date",
		Long:  "Follows MPRIS players on the session bus and rewrites now_playing.png in the output directory on every track change.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				loggerOptions(*debug),
				AppOptions,
				WatchOptions,
			)

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()

			// The signal context is already done, stop on a fresh one
			stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huetui/internal/controller"
	"github.com/alexisbeaulieu97/huetui/internal/palette"
	"github.com/alexisbeaulieu97/huetui/internal/upload"
)

type generateOptions struct {
	ImagePath string
	Style     string
	Mood      string
	Lighting  string
	Harmony   string
	Format    string
	Output    string
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette once and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGenerateOptions(*opts); err != nil {
				return err
			}

			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			applySettingOverrides(app.ctrl, opts)

			if opts.ImagePath != "" {
				u, err := upload.ProcessFile(opts.ImagePath)
				if err != nil {
					return err
				}
				app.ctrl.SetImage(u)
			}

			pal, err := app.ctrl.Generate(cmd.Context())
			if err != nil {
				return err
			}

			data, err := renderPalette(pal, opts.Format)
			if err != nil {
				return err
			}

			if opts.Output != "" {
				return os.WriteFile(opts.Output, data, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.ImagePath, "image", "i", "", "Image to analyze (JPG or PNG)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "Interior style")
	cmd.Flags().StringVar(&opts.Mood, "mood", "", "Palette mood")
	cmd.Flags().StringVar(&opts.Lighting, "lighting", "", "Lighting condition")
	cmd.Flags().StringVar(&opts.Harmony, "harmony", "", "Color harmony")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format: json or text")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "Write the palette to a file instead of stdout")

	return cmd
}

// renderPalette serializes a palette for scripted use: indented JSON, or one
// swatch line per color for text.
func renderPalette(pal *palette.Palette, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(pal, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "text":
		var b strings.Builder
		fmt.Fprintln(&b, pal.DisplayName())
		for i, col := range pal.Colors {
			role := col.Role
			if role == "" {
				role = fmt.Sprintf("Color %d", i+1)
			}
			lock := " "
			if col.Locked {
				lock = "*"
			}
			fmt.Fprintf(&b, "%s %-12s %s  %s\n", lock, role, col.Hex, col.RGBString())
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %q (use json or text)", format)
	}
}

// applySettingOverrides pushes non-empty flag values over the configured
// defaults before the only generate call, so no regeneration fires.
func applySettingOverrides(ctrl *controller.Controller, opts *generateOptions) {
	s := ctrl.Settings()
	if opts.Style != "" {
		s.Style = opts.Style
	}
	if opts.Mood != "" {
		s.Mood = opts.Mood
	}
	if opts.Lighting != "" {
		s.Lighting = opts.Lighting
	}
	if opts.Harmony != "" {
		s.Harmony = opts.Harmony
	}
	_, _ = ctrl.SettingsChanged(context.Background(), s)
	if opts.Lighting != "" {
		_, _ = ctrl.LightingChanged(context.Background(), opts.Lighting)
	}
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/vearutop/dpx"
	"github.com/vearutop/dpx/internal/report"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "dpxtool",
		Short:         "Inspect and process 10-bit RGB DPX images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newInfoCmd(), newDetectCmd(), newDerezCmd(), newExportCmd(), newImportCmd())
	return root
}

func newInfoCmd() *cobra.Command {
	var (
		inPath string
		asJSON bool
		fields bool
	)
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print header information",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(filepath.Clean(inPath))
			if err != nil {
				return err
			}
			defer f.Close()

			meta, _, err := dpx.Parse(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				payload, err := json.MarshalIndent(dpx.NewMetadataBundle(meta), "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(payload))
				return err
			case fields:
				report.Fields(out, meta)
			default:
				if err := report.Describe(out, meta); err != nil {
					return err
				}
			}
			if err := dpx.CheckProfile(meta); err != nil {
				logger.Warn("pixel data cannot be decoded", "error", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input DPX file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON metadata bundle")
	cmd.Flags().BoolVar(&fields, "fields", false, "print every header field")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newDetectCmd() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Check whether a file carries the DPX magic",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(filepath.Clean(inPath))
			if err != nil {
				return err
			}
			defer f.Close()

			ok, err := dpx.IsDPX(f)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "dpx")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not dpx")
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newDerezCmd() *cobra.Command {
	var (
		inPath, outPath string
		width, height   uint
		interpName      string
		workers         int
	)
	cmd := &cobra.Command{
		Use:   "derez",
		Short: "Scale images down and back up to their original size",
		Long: `derez scales each image down to an intermediate resolution and back up again,
keeping the original header. --in and --out may name files or directories; for
directories every file in --in is processed unless it already exists in --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interp, err := dpx.ParseInterpolation(interpName)
			if err != nil {
				return err
			}
			st, err := os.Stat(inPath)
			if err != nil {
				return err
			}
			var describeOnce sync.Once
			opts := func(o *dpx.DerezOptions) {
				o.Width = width
				o.Height = height
				o.Interpolation = interp
				if workers > 0 {
					o.Workers = workers
				}
				o.OnFile = func(res dpx.FileResult) {
					switch res.Status {
					case dpx.FileProcessed:
						logger.Info("processed", "file", res.Name)
					case dpx.FileExists:
						logger.Debug("output exists", "file", res.Name)
					default:
						logger.Warn("skipped", "file", res.Name, "status", res.Status.String(), "error", res.Err)
					}
				}
				o.OnMetadata = func(meta *dpx.Metadata) {
					describeOnce.Do(func() {
						if err := report.Describe(cmd.ErrOrStderr(), meta); err != nil {
							logger.Debug("describe header", "error", err)
						}
					})
				}
			}

			if !st.IsDir() {
				return dpx.DerezFile(inPath, outPath, opts)
			}

			rep, err := dpx.DerezDir(cmd.Context(), inPath, outPath, opts)
			if rep != nil {
				logger.Info("done",
					"processed", rep.Processed, "exists", rep.Exists,
					"invalid", rep.Invalid, "unsupported", rep.Unsupported)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input DPX file or directory")
	cmd.Flags().StringVar(&outPath, "out", "", "output DPX file or directory")
	cmd.Flags().UintVar(&width, "width", 960, "intermediate width")
	cmd.Flags().UintVar(&height, "height", 480, "intermediate height")
	cmd.Flags().StringVar(&interpName, "interp", "bilinear", "interpolation: nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel files for directory input (default: number of CPUs)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newExportCmd() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Decode a DPX image into a 16-bit TIFF",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, img, err := dpx.ReadFile(inPath)
			if err != nil {
				return err
			}
			out, err := os.Create(filepath.Clean(outPath))
			if err != nil {
				return err
			}
			if err := dpx.EncodeTIFF(out, img); err != nil {
				_ = out.Close()
				return err
			}
			logger.Debug("exported", "width", img.Width, "height", img.Height, "out", outPath)
			return out.Close()
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input DPX file")
	cmd.Flags().StringVar(&outPath, "out", "", "output TIFF file")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newImportCmd() *cobra.Command {
	var templatePath, tiffPath, outPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Encode a TIFF image into DPX using the header of a template DPX",
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := os.Open(filepath.Clean(tiffPath))
			if err != nil {
				return err
			}
			defer tf.Close()
			img, err := dpx.DecodeTIFF(tf)
			if err != nil {
				return err
			}

			f, err := os.Open(filepath.Clean(templatePath))
			if err != nil {
				return err
			}
			defer f.Close()
			_, raw, err := dpx.Parse(f)
			if err != nil {
				return err
			}

			if err := dpx.WriteFile(outPath, raw, img); err != nil {
				var se *dpx.ShapeError
				if errors.As(err, &se) {
					return fmt.Errorf("template is %dx%d, image is %dx%d: %w", se.WantWidth, se.WantHeight, se.Width, se.Height, err)
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&templatePath, "template", "", "template DPX file supplying the header")
	cmd.Flags().StringVar(&tiffPath, "tiff", "", "input TIFF file")
	cmd.Flags().StringVar(&outPath, "out", "", "output DPX file")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("tiff")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

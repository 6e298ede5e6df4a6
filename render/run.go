// Package render drives the formula pipeline end to end: semantic tree in,
// laid out boxes out, serialized in the format the user asked for.
package render

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"fml/common"
	"fml/config"
	"fml/layout"
	"fml/render/svgmath"
	"fml/sem"
	"fml/state"
	"fml/utils/images"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("layout")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	requested := env.Cfg.Layout.Style
	if s := cmd.String("style"); len(s) > 0 {
		requested = s
	}
	style, ok := common.ParseStyle(requested)
	if !ok {
		log.Warn("Unknown style requested, switching to text", zap.String("style", requested))
		style = common.StyleText
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format), zap.Stringer("style", style))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, style, log)
}

// process determines the input type (directory or single file) and processes
// accordingly, independently of CLI framework.
func process(ctx context.Context, src, dst string, style common.Style, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, style, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	return processFormula(ctx, src, filepath.Base(src), dst, style, log)
}

// processDir walks directory tree finding formula files and processes them.
func processDir(ctx context.Context, dir, dst string, style common.Style, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			log.Debug("Skipping file, not recognized as formula", zap.String("file", path))
			return nil
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processFormula(ctx, path, src, dst, style, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processFormula lays out a single formula file. "src" is the source path
// relative to the original input (used to derive the output name), "dst" the
// destination directory.
func processFormula(ctx context.Context, path, src, dst string, style common.Style, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read formula source (%s): %w", src, err)
	}
	root, err := sem.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("unable to parse formula source (%s): %w", src, err)
	}

	log.Info("Layout starting", zap.String("from", src))
	start := time.Now()

	res := layout.Layout(root, style, env.Metrics, log)
	if !res.Diags.Empty() {
		for _, d := range res.Diags.Items {
			log.Warn("Layout degraded", zap.String("run", res.Diags.Run.String()), zap.String("kind", d.Kind.String()), zap.String("detail", d.Detail))
		}
	}

	outputName := outputPath(src, dst, env.Format)
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := writeOutput(res, outputName, env); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	log.Info("Layout completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("run", res.Diags.Run.String()))
	return nil
}

func outputPath(src, dst string, format config.OutputFmt) string {
	base := strings.TrimSuffix(src, filepath.Ext(src))
	return filepath.Join(dst, base+format.Ext())
}

func writeOutput(res *layout.Result, outputName string, env *state.LocalEnv) error {
	opts := svgmath.Options{
		FontSize:     env.Cfg.Render.FontSize,
		Margin:       env.Cfg.Render.Margin,
		FontFamily:   env.Cfg.Render.FontFamily,
		Color:        env.Cfg.Render.Color,
		MarkDegraded: env.Cfg.Render.MarkDegraded,
	}

	switch env.Format {
	case config.OutputFmtDump:
		return os.WriteFile(outputName, []byte(res.Arena.Dump(res.Root)), 0644)
	case config.OutputFmtSvg:
		data, err := svgmath.RenderBytes(res.Arena, res.Root, opts)
		if err != nil {
			return err
		}
		return os.WriteFile(outputName, data, 0644)
	case config.OutputFmtPng:
		data, err := svgmath.RenderBytes(res.Arena, res.Root, opts)
		if err != nil {
			return err
		}
		img, err := images.RasterizeSVGToImage(data, 0, 0)
		if err != nil {
			return err
		}
		f, err := os.Create(outputName)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, img)
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Package extract drives one skeleton extraction operation: candidate
// discovery, file pick, read, parse, root resolution, flattening and output.
// Every stage is strictly sequential and any failure or cancellation aborts
// before the flattener runs.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"flatcss/htmldoc"
	"flatcss/scan"
	"flatcss/skeleton"
	"flatcss/state"
	"flatcss/ui"
)

// Run implements the "extract" subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")
	env.LeafOnly = cmd.Bool("leaf-only")
	log := env.Log.Named("extract")

	// Selector input is validated before any file work happens.
	selector := strings.TrimSpace(cmd.String("selector"))
	if selector == "" {
		var err error
		if selector, err = ui.AskSelector(); err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				log.Debug("Selector entry cancelled")
				return nil
			}
			return err
		}
	}
	if err := htmldoc.ValidateSelector(selector); err != nil {
		return fmt.Errorf("invalid root selector: %w", err)
	}

	source, err := chooseSource(cmd, env, log)
	if err != nil || source == "" {
		return err
	}

	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("unable to read source file '%s': %w", source, err)
	}
	defer in.Close()
	env.Rpt.Store("input/"+filepath.Base(source), source)

	doc, err := htmldoc.Parse(in, "")
	if err != nil {
		return fmt.Errorf("unable to parse '%s': %w", source, err)
	}

	root, err := doc.QueryFirst(selector)
	if err != nil {
		// Not an error exit - the selector simply is not in this document.
		log.Warn("Root selector matched nothing, aborting",
			zap.String("selector", selector), zap.String("file", source))
		return nil
	}
	env.Rpt.StoreData("dom-outline.txt", []byte(htmldoc.Outline(root)))

	flattener := skeleton.NewFlattener(skeleton.CompileIgnoreList(env.Cfg.Extract.IgnoreClasses), env.Log)
	flattener.EmitIntermediate = env.Cfg.Extract.EmitIntermediate && !env.LeafOnly
	sk := flattener.Flatten(root, selector)

	log.Info("Skeleton ready",
		zap.String("file", source),
		zap.String("selector", selector),
		zap.Int("rules", len(sk.Lines)))

	return writeResult(cmd, env, sk, selector)
}

// List implements the "scan" subcommand - shows what the interactive picker
// would offer, one candidate per line.
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	root := cmd.Args().Get(0)
	if root == "" {
		root = "."
	}

	candidates, err := scan.NewScanner(env.Cfg.Scan, env.Log).Candidates(root)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no HTML files found under '%s'", root)
	}
	for _, c := range candidates {
		fmt.Println(c)
	}
	return nil
}

// chooseSource resolves the input file: --file flag, positional argument or
// interactive pick over scanned candidates. Empty result with nil error means
// the user cancelled.
func chooseSource(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) (string, error) {
	if source := cmd.String("file"); source != "" {
		return source, nil
	}
	if source := cmd.Args().Get(0); source != "" {
		return source, nil
	}

	candidates, err := scan.NewScanner(env.Cfg.Scan, env.Log).Candidates(".")
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no HTML files found in the current directory tree")
	}

	source, err := ui.PickFile(candidates)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			log.Debug("File pick cancelled")
			return "", nil
		}
		return "", err
	}
	return source, nil
}

// writeResult sends the skeleton to stdout or to --output. A directory
// destination gets a file name derived from the root selector.
func writeResult(cmd *cli.Command, env *state.LocalEnv, sk *skeleton.Skeleton, selector string) error {
	dest := cmd.String("output")
	if dest == "" {
		_, err := sk.WriteTo(os.Stdout)
		return err
	}

	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		dest = filepath.Join(dest, outputName(selector))
	}
	if _, err := os.Stat(dest); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", dest)
	}
	if err := os.WriteFile(dest, []byte(sk.String()), 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", dest, err)
	}

	env.Log.Info("Wrote skeleton", zap.String("destination", dest), zap.Int("rules", len(sk.Lines)))
	return nil
}

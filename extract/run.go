// Package extract implements extract command: it loads cache snapshot, builds
// collection log and writes it as JSON document.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cldump/cache"
	"cldump/collog"
	"cldump/config"
	"cldump/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Component("extract")

	src := cmd.String("cachedir")
	if len(src) == 0 {
		return fmt.Errorf("%w: no cache snapshot has been specified (--cachedir)", collog.ErrConfig)
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.String("outputdir")
	if len(dst) == 0 {
		return fmt.Errorf("%w: no output directory has been specified (--outputdir)", collog.ErrConfig)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("run", env.RunID))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	_, err = process(ctx, src, dst, env, log)
	return err
}

// process handles the core extraction logic independently of CLI framework.
// It returns the path of written document. Nothing is written when cache
// cannot be loaded or collection log cannot be fully built.
func process(ctx context.Context, src, dst string, env *state.LocalEnv, log *zap.Logger) (string, error) {
	store, err := cache.Open(ctx, src, env.Cfg.Cache.Format, env.Cfg.Cache.MaxRecordSize, env.Component("cache"))
	if err != nil {
		return "", err
	}

	builder := collog.NewBuilder(store, &env.Cfg.Extraction, env.Component("collog"))
	catalog, err := builder.Build(ctx)
	if err != nil {
		return "", fmt.Errorf("unable to build collection log: %w", err)
	}

	stats := collog.Collect(catalog, env.Cfg.Stats.ItemAliases)
	stats.Placeholders = builder.Placeholders()

	data, err := collog.Marshal(catalog, env.Cfg.Output.Indent)
	if err != nil {
		return "", fmt.Errorf("unable to serialize collection log: %w", err)
	}

	values := buildValues(config.OutputNameTemplateFieldName, store.Source(), store.Format(), len(catalog), env.RunID.String())
	dir, name := buildOutputPath(dst, values, &env.Cfg.Output, log)

	path, replaced, err := collog.Write(data, dir, name)
	if err != nil {
		return "", fmt.Errorf("unable to write collection log: %w", err)
	}
	if replaced {
		log.Info("Replaced existing file", zap.String("file", path))
	}
	log.Info("Collection log written", zap.String("file", path), zap.Object("stats", stats))

	// Store extraction result for debugging
	if env.Rpt != nil {
		prefix := "result-" + env.RunID.String()
		env.Rpt.StoreData(prefix+"/tree.txt", []byte(catalog.String()))
		env.Rpt.StoreData(prefix+"/stats.txt", []byte(stats.String()))
		if err := env.Rpt.StoreCopy(prefix+"/"+filepath.Base(path), path); err != nil {
			log.Warn("Unable to store result in debug report", zap.Error(err))
		}
	}
	return path, nil
}

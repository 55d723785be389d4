// Package inspect implements inspect command: it prints decoded records of a
// cache snapshot to help locating entries named by extraction errors.
package inspect

import (
	"context"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cldump/cache"
	"cldump/collog"
	"cldump/defs"
	"cldump/state"
	"cldump/utils/debug"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Component("inspect")

	src := cmd.String("cachedir")
	if len(src) == 0 {
		return fmt.Errorf("%w: no cache snapshot has been specified (--cachedir)", collog.ErrConfig)
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("%w: record group has not been specified", collog.ErrConfig)
	}
	group, err := cache.ParseGroup(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("%w: %w", collog.ErrConfig, err)
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	store, err := cache.Open(ctx, src, env.Cfg.Cache.Format, env.Cfg.Cache.MaxRecordSize, env.Component("cache"), cache.KeepUndecodable())
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if cmd.Args().Len() == 1 {
		log.Debug("Listing records", zap.String("group", string(group)), zap.Int("count", store.Len(group)))
		return List(out, store, group)
	}

	id, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: bad record id: %w", collog.ErrConfig, err)
	}
	text, err := Describe(store, group, id)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

// List writes ids of all records in the group, one per line.
func List(w io.Writer, store *cache.Store, group cache.Group) error {
	for _, id := range store.IDs(group) {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns human readable dump of a single record. Records which
// cannot be decoded are dumped raw along with decoding error.
func Describe(store *cache.Store, group cache.Group, id int) (string, error) {
	tw := debug.NewTreeWriter()
	switch group {
	case cache.GroupStructs:
		def, ok := store.Struct(id)
		if !ok {
			bad, ok := store.Undecodable(group, id)
			if !ok {
				return "", fmt.Errorf("struct %d: %w", id, collog.ErrRecordNotFound)
			}
			writeUndecodable(tw, "struct", bad.RawRecord, bad.Err)
			break
		}
		tw.Line(0, "struct %d", def.ID)
		writeParams(tw, 1, def.Params)

	case cache.GroupEnums:
		rec, ok := store.Enum(id)
		if !ok {
			return "", fmt.Errorf("enum %d: %w", id, collog.ErrRecordNotFound)
		}
		def, err := defs.DecodeEnum(rec.ID, rec.Data)
		if err != nil {
			writeUndecodable(tw, "enum", rec, err)
			break
		}
		writeEnum(tw, def)

	case cache.GroupItems:
		def, ok := store.Item(id)
		if !ok {
			bad, ok := store.Undecodable(group, id)
			if !ok {
				return "", fmt.Errorf("item %d: %w", id, collog.ErrRecordNotFound)
			}
			writeUndecodable(tw, "item", bad.RawRecord, bad.Err)
			break
		}
		writeItem(tw, def)

	default:
		return "", fmt.Errorf("%w: unknown record group %q", collog.ErrConfig, group)
	}
	return tw.String(), nil
}

func writeUndecodable(tw *debug.TreeWriter, kind string, rec defs.RawRecord, err error) {
	tw.Line(0, "%s %d: undecodable", kind, rec.ID)
	tw.Line(1, "error: %v", err)
	tw.Bytes(1, "raw", rec.Data)
}

func writeParams(tw *debug.TreeWriter, depth int, params defs.Params) {
	if len(params) == 0 {
		return
	}
	tw.Line(depth, "params: %d", len(params))
	for _, key := range slices.Sorted(maps.Keys(params)) {
		tw.Line(depth+1, "%d = %s", key, params[key])
	}
}

func writeEnum(tw *debug.TreeWriter, def *defs.EnumDef) {
	tw.Line(0, "enum %d", def.ID)
	tw.Line(1, "key type: %s", typeChar(def.KeyType))
	tw.Line(1, "value type: %s", typeChar(def.ValType))
	if def.HasStrings() {
		tw.TextBlock(1, "default", def.DefaultString)
	} else {
		tw.Line(1, "default: %d", def.DefaultInt)
	}
	tw.Line(1, "entries: %d", def.Size())
	for i, key := range def.Keys {
		if def.HasStrings() {
			tw.Line(2, "%d -> %q", key, def.StringVals[i])
		} else {
			tw.Line(2, "%d -> %d", key, def.IntVals[i])
		}
	}
}

func writeItem(tw *debug.TreeWriter, def *defs.ItemDef) {
	tw.Line(0, "item %d", def.ID)
	tw.TextBlock(1, "name", def.Name)
	if def.Examine != "" {
		tw.TextBlock(1, "examine", def.Examine)
	}
	tw.Line(1, "cost: %d", def.Cost)
	if def.Stackable {
		tw.Line(1, "stackable")
	}
	if def.Members {
		tw.Line(1, "members")
	}
	if def.Tradeable {
		tw.Line(1, "tradeable")
	}
	if def.IsNoted() {
		tw.Line(1, "noted: of item %d", def.NotedID)
	} else if def.NotedID != -1 {
		tw.Line(1, "noted as: %d", def.NotedID)
	}
	if def.IsPlaceholder() {
		tw.Line(1, "placeholder: of item %d", def.PlaceholderID)
	} else if def.PlaceholderID != -1 {
		tw.Line(1, "placeholder as: %d", def.PlaceholderID)
	}
	for i, op := range def.Options {
		if op != "" {
			tw.Line(1, "option %d: %q", i, op)
		}
	}
	for i, op := range def.InterfaceOptions {
		if op != "" {
			tw.Line(1, "interface option %d: %q", i, op)
		}
	}
	writeParams(tw, 1, def.Params)
}

func typeChar(t byte) string {
	if t == 0 {
		return "unset"
	}
	return strconv.QuoteRune(rune(t))
}

// Package collog reconstructs collection log from cache records and writes
// it out.
//
// Collection log is a three level tree. Configured tab structs reference
// enumerations of page structs, every page struct carries its name and a
// reference to enumeration of item ids, items are named by item records.
// Order at every level is the declared order of the records.
package collog

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cldump/config"
	"cldump/defs"
)

// ItemLookup gives access to decoded item records.
type ItemLookup interface {
	Item(id int) (*defs.ItemDef, bool)
}

// Records is everything builder needs from a cache snapshot.
type Records interface {
	StructLookup
	ItemLookup
	Enums() []defs.RawRecord
}

// Builder walks tabs, pages and items. It is not safe for concurrent use.
type Builder struct {
	cfg    *config.ExtractionConfig
	params *ParamResolver
	enums  *EnumResolver
	items  ItemLookup
	log    *zap.Logger

	errs         error
	placeholders int
}

func NewBuilder(records Records, cfg *config.ExtractionConfig, log *zap.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		params: NewParamResolver(records),
		enums:  NewEnumResolver(records.Enums()),
		items:  records,
		log:    log,
	}
}

// Placeholders returns number of items emitted with placeholder name by the
// last Build.
func (b *Builder) Placeholders() int {
	return b.placeholders
}

// Build produces collection log. In fail-fast mode the first error stops
// traversal, otherwise all errors are collected and returned together. No
// partial result is ever returned.
func (b *Builder) Build(ctx context.Context) (Log, error) {
	b.errs, b.placeholders = nil, 0

	if len(b.cfg.Tabs) == 0 {
		return nil, fmt.Errorf("%w: no tabs requested", ErrConfig)
	}
	if len(b.cfg.TabNames) > 0 && !b.cfg.TabNamesMatch() {
		b.log.Warn("Tab names do not match tabs, using struct ids",
			zap.Int("tabs", len(b.cfg.Tabs)), zap.Int("names", len(b.cfg.TabNames)))
	}

	log := make(Log, 0, len(b.cfg.Tabs))
	for ordinal, structID := range b.cfg.Tabs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tab, err := b.buildTab(ctx, ordinal, structID)
		if err != nil {
			return nil, err
		}
		log = append(log, tab)
	}
	if b.errs != nil {
		return nil, b.errs
	}
	return log, nil
}

// fail decides whether traversal goes on after err: it returns err in
// fail-fast mode and remembers it otherwise.
func (b *Builder) fail(err error) error {
	if b.cfg.Errors == config.ErrorModeFailFast {
		return err
	}
	b.log.Debug("Resolution failed, continuing", zap.Error(err))
	b.errs = multierr.Append(b.errs, err)
	return nil
}

func (b *Builder) buildTab(ctx context.Context, ordinal, structID int) (Tab, error) {
	tab := Tab{TabID: ordinal, Pages: []Page{}}

	pagesEnum, err := b.params.RequireInt(structID, b.cfg.Params.TabEnum)
	if err != nil {
		return tab, b.fail(within(err, LevelTab, ordinal, -1))
	}
	pages, err := b.enums.Resolve(int(pagesEnum))
	if err != nil {
		return tab, b.fail(within(err, LevelTab, ordinal, -1))
	}

	b.log.Debug("Tab resolved",
		zap.Int("tab", ordinal), zap.String("name", b.cfg.TabName(ordinal)),
		zap.Int("struct", structID), zap.Int("pages", len(pages)))

	tab.Pages = make([]Page, 0, len(pages))
	for _, pageID := range pages {
		if err := ctx.Err(); err != nil {
			return tab, err
		}
		page, ok, err := b.buildPage(ordinal, int(pageID))
		if err != nil {
			return tab, err
		}
		if ok {
			tab.Pages = append(tab.Pages, page)
		}
	}
	return tab, nil
}

// buildPage returns false when page could not be built and error was
// remembered for later.
func (b *Builder) buildPage(ordinal, pageID int) (Page, bool, error) {
	name, err := b.params.RequireString(pageID, b.cfg.Params.PageName)
	if err != nil {
		return Page{}, false, b.fail(within(err, LevelPage, ordinal, pageID))
	}
	itemsEnum, err := b.params.RequireInt(pageID, b.cfg.Params.PageItemsEnum)
	if err != nil {
		return Page{}, false, b.fail(within(err, LevelPage, ordinal, pageID))
	}
	ids, err := b.enums.Resolve(int(itemsEnum))
	if err != nil {
		return Page{}, false, b.fail(within(err, LevelPage, ordinal, pageID))
	}

	page := Page{Name: name, Items: make([]Item, 0, len(ids))}
	for _, id := range ids {
		item, ok, err := b.resolveItem(ordinal, pageID, int(id))
		if err != nil {
			return page, false, err
		}
		if ok {
			page.Items = append(page.Items, item)
		}
	}
	return page, true, nil
}

func (b *Builder) resolveItem(ordinal, pageID, id int) (Item, bool, error) {
	if def, ok := b.items.Item(id); ok {
		return Item{ID: id, Name: def.Name}, true, nil
	}

	if b.cfg.MissingItems == config.MissingItemPolicyPlaceholder {
		b.placeholders++
		b.log.Warn("Item not found, using placeholder",
			zap.Int("item", id), zap.Int("page", pageID), zap.String("tab", b.cfg.TabName(ordinal)),
			zap.String("placeholder", b.cfg.PlaceholderName))
		return Item{ID: id, Name: b.cfg.PlaceholderName}, true, nil
	}
	return Item{}, false, b.fail(within(newResolveError(RecordKindItem, id, ErrItemNotFound), LevelItem, ordinal, pageID))
}

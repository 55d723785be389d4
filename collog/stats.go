package collog

import (
	"go.uber.org/zap/zapcore"

	"cldump/utils/debug"
)

// Stats summarizes built collection log.
type Stats struct {
	Tabs  int
	Pages int
	// Items counts every entry, the same item in two pages counts twice.
	Items       int
	UniqueItems int
	// UniqueSlots counts distinct items after alternative ids were replaced
	// with their canonical ones.
	UniqueSlots  int
	Placeholders int
}

// Collect computes statistics. Aliases map alternative item ids to the id of
// the slot they occupy.
func Collect(log Log, aliases map[int]int) Stats {
	st := Stats{Tabs: len(log)}
	items := make(map[int]struct{})
	slots := make(map[int]struct{})
	for _, tab := range log {
		st.Pages += len(tab.Pages)
		for _, page := range tab.Pages {
			st.Items += len(page.Items)
			for _, item := range page.Items {
				items[item.ID] = struct{}{}
				slot := item.ID
				if canonical, ok := aliases[slot]; ok {
					slot = canonical
				}
				slots[slot] = struct{}{}
			}
		}
	}
	st.UniqueItems, st.UniqueSlots = len(items), len(slots)
	return st
}

// MarshalLogObject allows using stats as zap.Object.
func (st Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("tabs", st.Tabs)
	enc.AddInt("pages", st.Pages)
	enc.AddInt("items", st.Items)
	enc.AddInt("unique_items", st.UniqueItems)
	enc.AddInt("unique_slots", st.UniqueSlots)
	if st.Placeholders > 0 {
		enc.AddInt("placeholders", st.Placeholders)
	}
	return nil
}

func (st Stats) String() string {
	const width = 14
	tw := debug.NewTreeWriter()
	tw.Line(0, "statistics")
	tw.Counter(1, "tabs", width, st.Tabs)
	tw.Counter(1, "pages", width, st.Pages)
	tw.Counter(1, "items", width, st.Items)
	tw.Counter(1, "unique items", width, st.UniqueItems)
	tw.Counter(1, "unique slots", width, st.UniqueSlots)
	tw.Counter(1, "placeholders", width, st.Placeholders)
	return tw.String()
}

package collog

import (
	"cldump/utils/debug"
)

// Log is the collection log: tabs in configured order.
type Log []Tab

type Tab struct {
	// TabID is the 0-based ordinal of the tab.
	TabID int    `json:"tabId"`
	Pages []Page `json:"pages"`
}

type Page struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// String returns human readable tree for debug report.
func (l Log) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "collection log: %d tab(s)", len(l))
	for _, tab := range l {
		tw.Line(1, "tab #%d: %d page(s)", tab.TabID, len(tab.Pages))
		for _, page := range tab.Pages {
			tw.TextBlock(2, "page", page.Name)
			for _, item := range page.Items {
				tw.Line(3, "%d %q", item.ID, item.Name)
			}
		}
	}
	return tw.String()
}

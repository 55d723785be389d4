package testutil

// Struct ids of collection log tabs in the reference cache.
var DefaultTabs = []int{471, 472, 473, 474, 475}

// SinglePage is a cache with one tab (struct 471) holding one page with two
// items.
//
//	[{"tabId":0,"pages":[{"name":"Page A","items":[{"id":10,"name":"Sword"},{"id":11,"name":"Shield"}]}]}]
func SinglePage() *Snapshot {
	return NewSnapshot().
		Tab(471, 1000).
		Enum(1000, 501).
		Page(501, "Page A", 1001).
		Enum(1001, 10, 11).
		Item(10, "Sword").
		Item(11, "Shield")
}

// SharedItem is a cache with two pages both listing item 10.
func SharedItem() *Snapshot {
	return NewSnapshot().
		Tab(471, 1000).
		Enum(1000, 501, 502).
		Page(501, "Page A", 1001).
		Page(502, "Page B", 1002).
		Enum(1001, 10, 11).
		Enum(1002, 12, 10).
		Item(10, "Sword").
		Item(11, "Shield").
		Item(12, "Helm")
}

// FullLog is a cache with all five default tabs, several pages per tab and
// items shared between pages.
func FullLog() *Snapshot {
	s := NewSnapshot()
	names := []string{"Sword", "Shield", "Helm", "Boots", "Gloves", "Cape", "Ring", "Amulet"}
	for i, name := range names {
		s.Item(100+i, name)
	}

	page := 600
	enum := 2000
	for t, tab := range DefaultTabs {
		pagesEnum := enum
		enum++
		var pages []int32
		for p := range t + 1 {
			itemsEnum := enum
			enum++
			var items []int32
			for k := range p + 2 {
				items = append(items, int32(100+(t+p+k)%len(names)))
			}
			s.Enum(itemsEnum, items...)
			s.Page(page, pageName(t, p), itemsEnum)
			pages = append(pages, int32(page))
			page++
		}
		s.Enum(pagesEnum, pages...)
		s.Tab(tab, pagesEnum)
	}
	return s
}

func pageName(tab, page int) string {
	return string(rune('A'+tab)) + "-" + string(rune('a'+page)) + " page"
}

package ioimport

// importCache holds the reuse-or-insert id caches for one load. The
// cache belongs to the loader and is dropped with it; nothing here is
// global state.
type importCache struct {
	// itemKeys marks fully committed dedup keys.
	itemKeys map[string]bool

	itemIDs  map[string]int64
	brandIDs map[string]int64
	titleIDs map[string]int64
	colorIDs map[string]int64
	sizeIDs  map[string]int64
}

func newImportCache() *importCache {
	return &importCache{
		itemKeys: make(map[string]bool),
		itemIDs:  make(map[string]int64),
		brandIDs: make(map[string]int64),
		titleIDs: make(map[string]int64),
		colorIDs: make(map[string]int64),
		sizeIDs:  make(map[string]int64),
	}
}

// dedupKey builds the item identity used for duplicate suppression.
func dedupKey(title, price, color, size string) string {
	return title + "-" + price + "-" + color + "-" + size
}

package rorex

// Journal persists successful fetches for later inspection. It is
// write-through only: nothing on the fetch path ever reads from it.
type Journal interface {
	Record(Entry) (EntryWithID, error)
	Entries(pair Pair, page, perPage int64) ([]EntryWithID, error)
	ProviderName() string
	Migrate() error
	Drop() error
}

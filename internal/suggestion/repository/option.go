package repository

// UpsertVerbOptions holds the parameters for upserting a verb.
type UpsertVerbOptions struct {
	Name  string
	Icon  string
	Color string
}

// LoadReferencesOptions selects a stored reference set.
type LoadReferencesOptions struct {
	Version    string   // registry version
	Model      string   // embedding model
	Categories []string // result order; categories missing from storage are omitted
}

// ReferenceVector is one embedded reference phrase.
type ReferenceVector struct {
	Category string
	Index    int // position of the phrase within its category
	Phrase   string
	Vector   []float32
}

// SaveReferencesOptions holds a full reference set to store.
type SaveReferencesOptions struct {
	Version string
	Model   string
	Vectors []ReferenceVector
}

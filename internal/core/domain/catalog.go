package domain

// Town, Product and Keyword are read-only reference entities supplied by
// the catalog. Campaigns only refer to them.
type Town struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

package catalog

// CatalogResponse carries the item list plus an availability flag. When the
// inventory service cannot be reached the flow degrades to an empty,
// clearly-labeled catalog rather than failing the page.
type CatalogResponse struct {
	Items       []Item `json:"items"`
	ItemCount   int    `json:"item_count"`
	Unavailable bool   `json:"unavailable,omitempty"`
}

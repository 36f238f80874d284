package domain

// DefaultCategory is reported for products whose catalog entry has no category
const DefaultCategory = "UNIPRO TEMPERED GLASS"

// Product is a protective-glass catalog entry and the mobile models it fits
type Product struct {
	BoxCode  string   `json:"boxCode"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Mobiles  []string `json:"mobiles"`
}

// CategoryOrDefault returns the product category, falling back to DefaultCategory
func (p Product) CategoryOrDefault() string {
	if p.Category == "" {
		return DefaultCategory
	}
	return p.Category
}

// Catalog is one immutable snapshot of both catalog tables
type Catalog struct {
	Models   []string
	Products []Product
}

// ProductMatch is a product resolved for a specific mobile model
type ProductMatch struct {
	BoxCode  string `json:"boxCode"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// ProductHit is a product found by a free-text keyword search
type ProductHit struct {
	BoxCode        string   `json:"boxCode"`
	Title          string   `json:"title"`
	MatchedMobiles []string `json:"matchedMobiles"`
}

// SearchResult is the combined keyword search response
type SearchResult struct {
	Mobiles  []string     `json:"mobiles"`
	Products []ProductHit `json:"products"`
}

// EmptySearchResult returns a result whose slices encode as [] rather than null
func EmptySearchResult() SearchResult {
	return SearchResult{Mobiles: []string{}, Products: []ProductHit{}}
}

// ProductSummary is the catalog listing projection of a product
type ProductSummary struct {
	BoxCode     string `json:"boxCode"`
	Title       string `json:"title"`
	MobileCount int    `json:"mobileCount"`
}

// DeviceProfile maps a physical screen resolution to candidate device models
type DeviceProfile struct {
	GPU        string   `json:"gpu"`
	Resolution string   `json:"resolution"`
	Models     []string `json:"models"`
}

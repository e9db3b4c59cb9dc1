package models

// Post is a seller's listing: an offer of some units of a product type at a
// price. Seller always holds the id of the user who created the listing.
type Post struct {
	ID           string
	ProductType  string
	PricePerUnit float64
	Units        int
	Seller       string
	Location     string
}

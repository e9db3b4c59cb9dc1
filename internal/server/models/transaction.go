package models

import "time"

// Transaction is the immutable record produced when a listing is purchased.
// Post is a snapshot of the listing taken at the moment it was retired;
// VerificationCode is shared only with the buyer and the seller.
type Transaction struct {
	PostID           string
	Seller           string
	Buyer            string
	VerificationCode string
	Post             Post
	CreatedAt        time.Time
}

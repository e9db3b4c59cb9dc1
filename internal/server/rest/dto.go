package rest

import (
	"time"

	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

type userJSON struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type postJSON struct {
	ID           string  `json:"id"`
	ProductType  string  `json:"productType"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Units        int     `json:"units"`
	Seller       string  `json:"seller"`
	Location     string  `json:"location"`
}

type transactionJSON struct {
	PostID           string    `json:"postId"`
	Seller           string    `json:"seller"`
	Buyer            string    `json:"buyer"`
	VerificationCode string    `json:"verificationCode"`
	Post             postJSON  `json:"post"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toPostJSON(p *models.Post) postJSON {
	return postJSON{
		ID:           p.ID,
		ProductType:  p.ProductType,
		PricePerUnit: p.PricePerUnit,
		Units:        p.Units,
		Seller:       p.Seller,
		Location:     p.Location,
	}
}

func toTransactionJSON(t *models.Transaction) transactionJSON {
	return transactionJSON{
		PostID:           t.PostID,
		Seller:           t.Seller,
		Buyer:            t.Buyer,
		VerificationCode: t.VerificationCode,
		Post:             toPostJSON(&t.Post),
		CreatedAt:        t.CreatedAt,
	}
}

func toPostList(posts []*models.Post) []postJSON {
	result := make([]postJSON, 0, len(posts))
	for _, p := range posts {
		result = append(result, toPostJSON(p))
	}
	return result
}

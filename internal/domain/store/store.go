package store

import "github.com/shopspring/decimal"

// Listing is one store carrying a product, with the price as the edge
// attribute from store_product_mapping.
type Listing struct {
	Name          string          `json:"name"`
	Image         *string         `json:"image"`
	Rating        *float64        `json:"rating"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	City          string          `json:"city"`
	Price         decimal.Decimal `json:"price"`
	Offers        []string        `json:"offers"`
	Distance      string          `json:"distance"`
	AffiliateLink *string         `json:"affiliate_link"`
}

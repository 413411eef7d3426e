package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSummary is a search/listing row. MinPrice is always an aggregate
// over store_product_mapping; it is null when no store carries the product.
type ProductSummary struct {
	Name         string              `json:"name"`
	Image        string              `json:"image"`
	KeyName      string              `json:"key_name"`
	VerticalName string              `json:"vertical_name"`
	MinPrice     decimal.NullDecimal `json:"min_price"`
	StoreCount   int                 `json:"store_count"`
}

type Product struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	KeyName            string              `json:"key_name"`
	Image              string              `json:"image"`
	Highlights         *string             `json:"highlights"`
	Storage            string              `json:"storage,omitempty"`
	RAM                string              `json:"ram,omitempty"`
	Colour             string              `json:"colour,omitempty"`
	VerticalID         *int64              `json:"vertical_id"`
	VerticalName       *string             `json:"vertical_name"`
	Rating             *float64            `json:"rating"`
	RatingCount        *int                `json:"rating_count"`
	ReviewCount        *int                `json:"review_count"`
	Specifications     *string             `json:"specifications"`
	MRP                decimal.NullDecimal `json:"mrp"`
	ParentCategoryID   *int64              `json:"parent_category_id"`
	SubCategoryID      *int64              `json:"sub_category_id"`
	ParentCategoryName *string             `json:"parent_category_name"`
	SubCategoryName    *string             `json:"sub_category_name"`
	Reviews            []Review            `json:"reviews"`
}

type Review struct {
	Review       string     `json:"review"`
	Rating       float64    `json:"rating"`
	CreatedAt    *time.Time `json:"created_at"`
	ReviewImages *string    `json:"review_images"`
	UserName     *string    `json:"user_name"`
	UserImage    *string    `json:"user_image"`
}

// Variant is a sibling SKU within a vertical. Attribute fields are empty
// strings when the column is null; an empty attribute never participates in
// variant matching.
type Variant struct {
	Storage string `json:"storage,omitempty"`
	RAM     string `json:"ram,omitempty"`
	Colour  string `json:"colour,omitempty"`
	KeyName string `json:"key_name"`
}

type Vertical struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SimilarProduct is the cheapest product of one other vertical.
type SimilarProduct struct {
	VerticalName string          `json:"verticalName"`
	ProductName  string          `json:"productName"`
	KeyName      string          `json:"key_name"`
	ProductImage string          `json:"productImage"`
	Price        decimal.Decimal `json:"price"`
}

// Pill is a curated search suggestion chip (entity_type POPULAR_PILLS).
type Pill struct {
	ID     int64  `json:"id"`
	Header string `json:"header"`
}

// RailProduct carries no price: listing prices always come from store
// mappings and rails deliberately defer that lookup to the product page.
type RailProduct struct {
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	ImageURL *string `json:"image_url"`
}

type Rail struct {
	ID       int64         `json:"id"`
	Header   string        `json:"header"`
	Products []RailProduct `json:"products"`
}

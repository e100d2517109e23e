package models

// Feature is a display tag attached to a product (portion size, spice
// level, chef's recommendation and so on). The admin panel picks these
// from the FeatureIcons taxonomy.
type Feature struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Variation is a purchasable portion of a product with its own price.
type Variation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Product is a menu item as stored in data/products.json. Price is kept
// as a decimal string to match the POS export; MssqlProductName links the
// product to its row in the external POS database for price sync.
type Product struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Price            string      `json:"price"`
	Category         string      `json:"category"`
	Image            string      `json:"image"`
	CategoryImage    string      `json:"categoryImage"`
	Features         []Feature   `json:"features"`
	MssqlProductName string      `json:"mssqlProductName"`
	Variations       []Variation `json:"variations,omitempty"`
}

// ProductUpdate carries a partial product update. Nil fields are left
// untouched so the admin panel can PATCH-style update over PUT.
type ProductUpdate struct {
	Name             *string      `json:"name"`
	Description      *string      `json:"description"`
	Price            *string      `json:"price"`
	Category         *string      `json:"category"`
	Image            *string      `json:"image"`
	CategoryImage    *string      `json:"categoryImage"`
	Features         *[]Feature   `json:"features"`
	MssqlProductName *string      `json:"mssqlProductName"`
	Variations       *[]Variation `json:"variations"`
}

// Apply copies the non-nil fields onto p.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.CategoryImage != nil {
		p.CategoryImage = *u.CategoryImage
	}
	if u.Features != nil {
		p.Features = *u.Features
	}
	if u.MssqlProductName != nil {
		p.MssqlProductName = *u.MssqlProductName
	}
	if u.Variations != nil {
		p.Variations = *u.Variations
	}
}

package models

// PriceRow is one priced portion from the external POS database
// (ScreenMenuItems joined down to MenuItemPrices).
type PriceRow struct {
	PortionID int64   `gorm:"column:portion_id" json:"portion_id"`
	PriceID   int64   `gorm:"column:prices_id" json:"prices_id"`
	Category  string  `gorm:"column:category" json:"category"`
	Product   string  `gorm:"column:product" json:"product"`
	Portion   string  `gorm:"column:portion" json:"portion"`
	Price     float64 `gorm:"column:price" json:"price"`
}

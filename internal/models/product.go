// internal/models/product.go
package models

// Product is one denormalized product-review row from an uploaded dataset.
// Every column except the identity key is opaque text: the "numeric" fields
// (prices, rating, rating count, discount percentage) keep whatever free-form
// string the source file carried, and numeric meaning only materializes at
// query time. Rows are insert-only; there is no update or delete surface.
type Product struct {
	ID                 uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID          string `json:"product_id" gorm:"size:255;index"`
	ProductName        string `json:"product_name" gorm:"type:text"`
	Category           string `json:"category" gorm:"size:255;index"`
	DiscountedPrice    string `json:"discounted_price" gorm:"size:50"`
	ActualPrice        string `json:"actual_price" gorm:"size:50"`
	DiscountPercentage string `json:"discount_percentage" gorm:"size:50"`
	Rating             string `json:"rating" gorm:"size:10"`
	RatingCount        string `json:"rating_count" gorm:"size:50"`
	AboutProduct       string `json:"about_product" gorm:"type:text"`
	UserName           string `json:"user_name" gorm:"size:255"`
	ReviewTitle        string `json:"review_title" gorm:"type:text"`
	ReviewContent      string `json:"review_content" gorm:"type:text"`
}

func (Product) TableName() string {
	return "products"
}

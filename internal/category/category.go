// Package category holds the closed category enumeration shared by stores
// and products.
package category

type Category string

const (
	Electronics Category = "Electronics"
	Clothing    Category = "Clothing"
	HomeGarden  Category = "Home & Garden"
	Sports      Category = "Sports"
	Books       Category = "Books"
	Toys        Category = "Toys"
	Beauty      Category = "Beauty"
	Automotive  Category = "Automotive"
	Food        Category = "Food"
	Other       Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case Electronics, Clothing, HomeGarden, Sports, Books, Toys, Beauty, Automotive, Food, Other:
		return true
	}
	return false
}

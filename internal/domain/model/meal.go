package model

type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"image_url"`
	DietaryTags []string `json:"dietary_tags"`
	IsAvailable bool     `json:"is_available"`
	CategoryID  string   `json:"category_id"`
	ProviderID  string   `json:"provider_id"`
	Rating      float64  `json:"rating"`
	ReviewCount int64    `json:"review_count"`
}

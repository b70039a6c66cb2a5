package model

type ProviderProfile struct {
	UserID         string  `json:"user_id"`
	RestaurantName string  `json:"restaurant_name"`
	Address        string  `json:"address"`
	Description    string  `json:"description"`
	LogoURL        string  `json:"logo_url"`
	IsVerified     bool    `json:"is_verified"`
	Rating         float64 `json:"rating"`
	ReviewCount    int64   `json:"review_count"`
	OpeningHours   string  `json:"opening_hours"`
}

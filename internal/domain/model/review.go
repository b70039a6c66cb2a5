package model

import "time"

type Review struct {
	ID        string    `json:"id"`
	MealID    string    `json:"meal_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

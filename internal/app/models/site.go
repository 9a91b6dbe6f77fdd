package models

type Site struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
	TimeModel
}

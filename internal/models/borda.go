package models

// Borda is an optional stuffed-crust add-on with its own per-size pricing
type Borda struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Nome       string  `json:"nome" gorm:"not null"`
	PrecoP     float64 `json:"precoP"`
	PrecoM     float64 `json:"precoM"`
	PrecoG     float64 `json:"precoG"`
	PrecoGG    float64 `json:"precoGG"`
	Disponivel bool    `json:"disponivel" gorm:"default:true"`
}

package models

// TipoMassa is an optional base-dough selection (e.g. tradicional, integral)
type TipoMassa struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Nome       string `json:"nome" gorm:"not null"`
	Disponivel bool   `json:"disponivel" gorm:"default:true"`
}

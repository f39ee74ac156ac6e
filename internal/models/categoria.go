package models

// Categoria groups menu items (e.g. "Pizzas", "Bebidas")
type Categoria struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Nome  string `json:"nome" gorm:"not null"`
	Itens []Item `json:"itens,omitempty" gorm:"foreignKey:CategoriaID"`
}

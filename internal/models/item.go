package models

// Item is a sellable menu entry. Pizzas carry per-size prices (P/M/G/GG)
// and a second price table for when the customer adds a stuffed crust;
// simple items (drinks, desserts) only use Preco.
type Item struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Nome      string  `json:"nome" gorm:"not null"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`

	PrecoP  float64 `json:"precoP"`
	PrecoM  float64 `json:"precoM"`
	PrecoG  float64 `json:"precoG"`
	PrecoGG float64 `json:"precoGG"`

	PrecoComBordaP  float64 `json:"precoComBordaP"`
	PrecoComBordaM  float64 `json:"precoComBordaM"`
	PrecoComBordaG  float64 `json:"precoComBordaG"`
	PrecoComBordaGG float64 `json:"precoComBordaGG"`

	ImagemURL  string `json:"imagemUrl"`
	Disponivel bool   `json:"disponivel" gorm:"default:true"`

	// Ordem is a sparse sort key (gaps of 10) so items can be inserted
	// between neighbours without renumbering the whole category.
	Ordem int `json:"ordem"`

	CategoriaID uint       `json:"categoriaId" gorm:"not null;index"`
	Categoria   *Categoria `json:"categoria,omitempty" gorm:"foreignKey:CategoriaID"`
}

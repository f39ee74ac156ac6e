package models

import "time"

// Order status values. The set is flat: the kitchen can move an order to
// any status, there is no enforced transition graph.
const (
	StatusEmAnalise  = 1
	StatusEmProducao = 2
	StatusPronto     = 3
	StatusFinalizado = 4
	StatusCancelado  = 5
)

// StatusValido reports whether s is a known order status
func StatusValido(s int) bool {
	return s >= StatusEmAnalise && s <= StatusCancelado
}

// Pedido is a customer's submitted purchase with one or more lines
type Pedido struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	NomeCliente     string       `json:"nomeCliente" gorm:"not null"`
	Telefone        string       `json:"telefone" gorm:"not null;index"`
	Endereco        string       `json:"endereco" gorm:"not null"`
	Observacoes     string       `json:"observacoes"`
	MetodoPagamento string       `json:"metodoPagamento" gorm:"not null"`
	TrocoPara       *float64     `json:"trocoPara"`
	TaxaEntrega     float64      `json:"taxaEntrega"`
	Status          int          `json:"status" gorm:"default:1"`
	CriadoEm        time.Time    `json:"criadoEm" gorm:"autoCreateTime"`
	Itens           []PedidoItem `json:"itens" gorm:"foreignKey:PedidoID"`
}

// PedidoItem is one item selection within an order. Borda and TipoMassa
// are optional; a nil reference means the customer picked none.
type PedidoItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	PedidoID    uint       `json:"pedidoId" gorm:"not null;index"`
	ItemID      uint       `json:"itemId" gorm:"not null"`
	Quantidade  int        `json:"quantidade" gorm:"not null"`
	Tamanho     string     `json:"tamanho"`
	PrecoFinal  float64    `json:"precoFinal"`
	BordaID     *uint      `json:"bordaId"`
	PrecoBorda  *float64   `json:"precoBorda"`
	TipoMassaID *uint      `json:"tipoMassaId"`
	Item        *Item      `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Borda       *Borda     `json:"borda,omitempty" gorm:"foreignKey:BordaID"`
	TipoMassa   *TipoMassa `json:"tipoMassa,omitempty" gorm:"foreignKey:TipoMassaID"`
}

package services

import (
	"errors"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
)

// ErrStatusPedidoInvalido is returned when a status update targets a value
// outside the known set
var ErrStatusPedidoInvalido = errors.New("status de pedido inválido")

// NovoPedidoItem is one order line as submitted by the customer
type NovoPedidoItem struct {
	ItemID      uint     `json:"itemId" binding:"required"`
	Quantidade  int      `json:"quantidade" binding:"required,gt=0"`
	Tamanho     string   `json:"tamanho"`
	PrecoFinal  float64  `json:"precoFinal"`
	BordaID     *uint    `json:"bordaId"`
	PrecoBorda  *float64 `json:"precoBorda"`
	TipoMassaID *uint    `json:"tipoMassaId"`
}

// NovoPedido is the customer-facing order payload
type NovoPedido struct {
	NomeCliente     string           `json:"nomeCliente" binding:"required"`
	Telefone        string           `json:"telefone" binding:"required"`
	Endereco        string           `json:"endereco" binding:"required"`
	Observacoes     string           `json:"observacoes"`
	MetodoPagamento string           `json:"metodoPagamento" binding:"required"`
	TrocoPara       *float64         `json:"trocoPara"`
	TaxaEntrega     float64          `json:"taxaEntrega"`
	Itens           []NovoPedidoItem `json:"itens" binding:"required,min=1,dive"`
}

// PedidoService provides methods over customer orders and their lifecycle
type PedidoService interface {
	// CreatePedido persists an order with its nested lines atomically and
	// returns the generated order
	CreatePedido(req NovoPedido) (models.Pedido, error)
	// GetPedidosByTelefone retrieves the 10 most recent orders for a phone
	// number, newest first; fails with gorm.ErrRecordNotFound when none
	GetPedidosByTelefone(telefone string) ([]models.Pedido, error)
	// GetPedidosAtivos lists the kitchen queue (statuses 1-3), oldest first
	GetPedidosAtivos() ([]models.Pedido, error)
	// GetHistorico lists completed orders (status 4), newest first
	GetHistorico() ([]models.Pedido, error)
	// UpdateStatus moves an order to any status in the valid set
	UpdateStatus(id uint, status int) (models.Pedido, error)
}

type pedidoService struct {
	db *gorm.DB
}

// NewPedidoService creates a new instance of PedidoService
func NewPedidoService(db *gorm.DB) PedidoService {
	return &pedidoService{db: db}
}

func (s *pedidoService) CreatePedido(req NovoPedido) (models.Pedido, error) {
	pedido := models.Pedido{
		NomeCliente:     req.NomeCliente,
		Telefone:        req.Telefone,
		Endereco:        req.Endereco,
		Observacoes:     req.Observacoes,
		MetodoPagamento: req.MetodoPagamento,
		TrocoPara:       req.TrocoPara,
		TaxaEntrega:     req.TaxaEntrega,
		Status:          models.StatusEmAnalise,
	}
	for _, it := range req.Itens {
		pedido.Itens = append(pedido.Itens, models.PedidoItem{
			ItemID:      it.ItemID,
			Quantidade:  it.Quantidade,
			Tamanho:     it.Tamanho,
			PrecoFinal:  it.PrecoFinal,
			BordaID:     it.BordaID,
			PrecoBorda:  it.PrecoBorda,
			TipoMassaID: it.TipoMassaID,
		})
	}

	// Create writes the order and its lines in a single transaction
	if err := s.db.Create(&pedido).Error; err != nil {
		return models.Pedido{}, err
	}
	return pedido, nil
}

func (s *pedidoService) GetPedidosByTelefone(telefone string) ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := s.preloadItens(s.db).
		Where("telefone = ?", telefone).
		Order("criado_em DESC, id DESC").
		Limit(10).
		Find(&pedidos).Error
	if err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return pedidos, nil
}

func (s *pedidoService) GetPedidosAtivos() ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := s.preloadItens(s.db).
		Where("status IN ?", []int{models.StatusEmAnalise, models.StatusEmProducao, models.StatusPronto}).
		Order("criado_em, id").
		Find(&pedidos).Error
	if err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (s *pedidoService) GetHistorico() ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := s.preloadItens(s.db).
		Where("status = ?", models.StatusFinalizado).
		Order("criado_em DESC, id DESC").
		Find(&pedidos).Error
	if err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (s *pedidoService) UpdateStatus(id uint, status int) (models.Pedido, error) {
	if !models.StatusValido(status) {
		return models.Pedido{}, ErrStatusPedidoInvalido
	}

	var pedido models.Pedido
	if err := s.db.First(&pedido, id).Error; err != nil {
		return models.Pedido{}, err
	}

	if err := s.db.Model(&pedido).Update("status", status).Error; err != nil {
		return models.Pedido{}, err
	}
	pedido.Status = status
	return pedido, nil
}

// preloadItens attaches the joined line detail (item, crust, dough names)
func (s *pedidoService) preloadItens(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Itens").
		Preload("Itens.Item").
		Preload("Itens.Borda").
		Preload("Itens.TipoMassa")
}

package services

import (
	"errors"
	"math"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrTaxaInvalida is returned when the delivery fee is NaN or negative
	ErrTaxaInvalida = errors.New("taxa de entrega inválida")
	// ErrHorariosIncompletos is returned when the weekly schedule update
	// does not cover each of the 7 weekdays exactly once
	ErrHorariosIncompletos = errors.New("a agenda deve conter exatamente os 7 dias da semana")
)

// HorarioEntrada is one weekday entry of a schedule update
type HorarioEntrada struct {
	DiaSemana      int    `json:"diaSemana"`
	Rotulo         string `json:"rotulo"`
	Aberto         bool   `json:"aberto"`
	HoraAbertura   string `json:"horaAbertura"`
	HoraFechamento string `json:"horaFechamento"`
}

// ParametrosService manages the delivery fee and the weekly opening hours
type ParametrosService interface {
	// GetTaxaEntrega retrieves the delivery fee (first row)
	GetTaxaEntrega() (models.TaxaEntrega, error)
	// UpdateTaxaEntrega sets a new fee value
	UpdateTaxaEntrega(id uint, valor float64) (models.TaxaEntrega, error)
	// GetHorarios retrieves the 7 weekday rows ordered by weekday
	GetHorarios() ([]models.HorarioFuncionamento, error)
	// UpdateHorarios upserts the full weekly schedule atomically; partial
	// schedules are rejected outright
	UpdateHorarios(entradas []HorarioEntrada) ([]models.HorarioFuncionamento, error)
}

type parametrosService struct {
	db *gorm.DB
}

// NewParametrosService creates a new instance of ParametrosService
func NewParametrosService(db *gorm.DB) ParametrosService {
	return &parametrosService{db: db}
}

func (s *parametrosService) GetTaxaEntrega() (models.TaxaEntrega, error) {
	var taxa models.TaxaEntrega
	if err := s.db.First(&taxa).Error; err != nil {
		return models.TaxaEntrega{}, err
	}
	return taxa, nil
}

func (s *parametrosService) UpdateTaxaEntrega(id uint, valor float64) (models.TaxaEntrega, error) {
	if math.IsNaN(valor) || valor < 0 {
		return models.TaxaEntrega{}, ErrTaxaInvalida
	}

	var taxa models.TaxaEntrega
	if err := s.db.First(&taxa, id).Error; err != nil {
		return models.TaxaEntrega{}, err
	}

	if err := s.db.Model(&taxa).Update("valor", valor).Error; err != nil {
		return models.TaxaEntrega{}, err
	}
	taxa.Valor = valor
	return taxa, nil
}

func (s *parametrosService) GetHorarios() ([]models.HorarioFuncionamento, error) {
	var horarios []models.HorarioFuncionamento
	if err := s.db.Order("dia_semana").Find(&horarios).Error; err != nil {
		return nil, err
	}
	return horarios, nil
}

func (s *parametrosService) UpdateHorarios(entradas []HorarioEntrada) ([]models.HorarioFuncionamento, error) {
	if len(entradas) != 7 {
		return nil, ErrHorariosIncompletos
	}
	vistos := make(map[int]bool, 7)
	for _, e := range entradas {
		if e.DiaSemana < 0 || e.DiaSemana > 6 || vistos[e.DiaSemana] {
			return nil, ErrHorariosIncompletos
		}
		vistos[e.DiaSemana] = true
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entradas {
			horario := models.HorarioFuncionamento{
				DiaSemana:      e.DiaSemana,
				Rotulo:         e.Rotulo,
				Aberto:         e.Aberto,
				HoraAbertura:   e.HoraAbertura,
				HoraFechamento: e.HoraFechamento,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "dia_semana"}},
				DoUpdates: clause.AssignmentColumns([]string{"rotulo", "aberto", "hora_abertura", "hora_fechamento"}),
			}).Create(&horario).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetHorarios()
}

package models

// TaxaEntrega is the flat delivery fee. Only the first row is ever read;
// bootstrap guarantees it exists.
type TaxaEntrega struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Valor float64 `json:"valor"`
}

// HorarioFuncionamento is one weekday row of the opening-hours schedule.
// The table always holds exactly 7 rows, keyed by DiaSemana (0=domingo).
type HorarioFuncionamento struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	DiaSemana      int    `json:"diaSemana" gorm:"uniqueIndex;not null"`
	Rotulo         string `json:"rotulo"`
	Aberto         bool   `json:"aberto"`
	HoraAbertura   string `json:"horaAbertura"`
	HoraFechamento string `json:"horaFechamento"`
}

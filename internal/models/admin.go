package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is the back-office account. Bootstrap creates exactly one if the
// table is empty; there is no self-service registration.
type Admin struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Senha     string `json:"-" gorm:"not null"`
	CriadoEm     time.Time `json:"-" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"-" gorm:"autoUpdateTime"`
}

// HashSenha replaces the plain-text Senha with its bcrypt hash
func (a *Admin) HashSenha() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(a.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Senha = string(hash)
	return nil
}

// CheckSenha compares a plain-text password against the stored hash
func (a *Admin) CheckSenha(senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Senha), []byte(senha)) == nil
}

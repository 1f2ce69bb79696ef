/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package model

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Cliente struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Nombre    string    `gorm:"not null;unique;uniqueIndex:uidx_clientes_nombre" json:"nombre"`
	Polizas   []Poliza  `gorm:"foreignKey:ClienteID" json:"-"`
}

var (
	ErrClienteNotFound = errors.New("cliente not found")
)

func (m *Model) CreateCliente(cliente *Cliente) (*Cliente, error) {
	if err := m.db.Create(cliente).Error; err != nil {
		return nil, err
	}

	return cliente, nil
}

func (m *Model) GetCliente(cliente *Cliente) (*Cliente, error) {
	if err := m.db.Where(cliente).First(cliente).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}

	return cliente, nil
}

func (m *Model) ListClientes(clientes *[]Cliente) (*[]Cliente, error) {
	if err := m.db.Order("nombre").Find(clientes).Error; err != nil {
		return nil, err
	}

	return clientes, nil
}

// SearchClientes matches nombre case-insensitively on a substring, the
// same fuzzy lookup the agent tool exposes.
func (m *Model) SearchClientes(nombre string) ([]Cliente, error) {
	pattern := "%" + strings.ToLower(nombre) + "%"

	clientes := []Cliente{}
	if err := m.db.Where("LOWER(nombre) LIKE ?", pattern).Order("nombre").Find(&clientes).Error; err != nil {
		return nil, err
	}

	return clientes, nil
}

/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package model

import (
	"time"
)

type Poliza struct {
	ID             uint      `gorm:"primarykey" json:"-"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
	ClienteID      uint      `gorm:"not null;index" json:"-"`
	NumeroDePoliza string    `gorm:"not null;unique" json:"numero_de_poliza"`
	VigenciaInicio string    `json:"vigencia_inicio"`
	VigenciaFin    string    `json:"vigencia_fin"`
	TipoSeguro     string    `json:"tipo_seguro"`
	SumaAsegurada  float64   `json:"suma_asegurada"`
	PrimaAnual     float64   `json:"prima_anual"`
	PrimaNeta      float64   `json:"prima_neta"`
	Descripcion    string    `json:"descripcion"`
	Estado         string    `json:"estado"`
}

func (m *Model) CreatePoliza(poliza *Poliza) (*Poliza, error) {
	if err := m.db.Create(poliza).Error; err != nil {
		return nil, err
	}

	return poliza, nil
}

func (m *Model) ListPolizasByCliente(clienteID uint) ([]Poliza, error) {
	polizas := []Poliza{}
	if err := m.db.Where("cliente_id = ?", clienteID).Order("numero_de_poliza").Find(&polizas).Error; err != nil {
		return nil, err
	}

	return polizas, nil
}

/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package agent

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/proyectorodrigo/polizabot/internal/anthropic"
	"github.com/proyectorodrigo/polizabot/internal/model"
)

const (
	ToolGetClientePolizas = "get_cliente_polizas"
	ToolListAllClientes   = "list_all_clientes"
)

type Tools struct {
	model *model.Model
}

func NewTools(m *model.Model) *Tools {
	return &Tools{model: m}
}

func (t *Tools) Definitions() []anthropic.Tool {
	return []anthropic.Tool{
		{
			Name: ToolGetClientePolizas,
			Description: "Busca todas las polizas de seguro de un cliente por nombre. " +
				"La busqueda es parcial y no distingue mayusculas. Devuelve numero de poliza, " +
				"vigencia, tipo de seguro, suma asegurada, primas, descripcion y estado.",
			InputSchema: anthropic.InputSchema{
				Type: "object",
				Properties: map[string]anthropic.Property{
					"nombre_cliente": {
						Type:        "string",
						Description: "Nombre (o parte del nombre) del cliente a buscar.",
					},
				},
				Required: []string{"nombre_cliente"},
			},
		},
		{
			Name: ToolListAllClientes,
			Description: "Lista todos los clientes registrados en la base de datos. " +
				"Util para ayudar al usuario a encontrar su nombre exacto.",
			InputSchema: anthropic.InputSchema{
				Type: "object",
			},
		},
	}
}

func (t *Tools) Execute(name string, input json.RawMessage) (string, error) {
	switch name {
	case ToolGetClientePolizas:
		var args struct {
			NombreCliente string `json:"nombre_cliente"`
		}
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("invalid tool input: %v", err)
		}
		return t.getClientePolizas(args.NombreCliente)
	case ToolListAllClientes:
		return t.listAllClientes()
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

func (t *Tools) getClientePolizas(nombreCliente string) (string, error) {
	clientes, err := t.model.SearchClientes(nombreCliente)
	if err != nil {
		return "", fmt.Errorf("error al consultar la base de datos: %v", err)
	}

	if len(clientes) == 0 {
		return fmt.Sprintf("No se encontró ningún cliente con el nombre '%s'.", nombreCliente), nil
	}

	var report strings.Builder
	for _, cliente := range clientes {
		polizas, err := t.model.ListPolizasByCliente(cliente.ID)
		if err != nil {
			return "", fmt.Errorf("error al consultar la base de datos: %v", err)
		}

		report.WriteString("\n" + strings.Repeat("=", 60) + "\n")
		fmt.Fprintf(&report, "CLIENTE: %s (ID: %d)\n", cliente.Nombre, cliente.ID)
		report.WriteString(strings.Repeat("=", 60) + "\n")

		if len(polizas) == 0 {
			report.WriteString("  No tiene pólizas registradas.\n")
			continue
		}

		fmt.Fprintf(&report, "  Total de pólizas: %d\n\n", len(polizas))

		for i, poliza := range polizas {
			fmt.Fprintf(&report, "  --- Póliza %d ---\n", i+1)
			fmt.Fprintf(&report, "  Número de Póliza: %s\n", orNA(poliza.NumeroDePoliza))
			fmt.Fprintf(&report, "  Tipo de Seguro: %s\n", orNA(poliza.TipoSeguro))
			fmt.Fprintf(&report, "  Estado: %s\n", orNA(poliza.Estado))
			fmt.Fprintf(&report, "  Vigencia: %s a %s\n", orNA(poliza.VigenciaInicio), orNA(poliza.VigenciaFin))
			fmt.Fprintf(&report, "  Suma Asegurada: %s\n", money(poliza.SumaAsegurada))
			fmt.Fprintf(&report, "  Prima Anual: %s\n", money(poliza.PrimaAnual))
			fmt.Fprintf(&report, "  Prima Neta: %s\n", money(poliza.PrimaNeta))
			fmt.Fprintf(&report, "  Descripción: %s\n\n", orNA(poliza.Descripcion))
		}
	}

	return report.String(), nil
}

func (t *Tools) listAllClientes() (string, error) {
	clientes := []model.Cliente{}
	if _, err := t.model.ListClientes(&clientes); err != nil {
		return "", fmt.Errorf("error al consultar la base de datos: %v", err)
	}

	if len(clientes) == 0 {
		return "No hay clientes registrados en la base de datos.", nil
	}

	var report strings.Builder
	report.WriteString("LISTA DE CLIENTES:\n")
	report.WriteString(strings.Repeat("-", 40) + "\n")

	for _, cliente := range clientes {
		fmt.Fprintf(&report, "  • %s (ID: %d)\n", cliente.Nombre, cliente.ID)
	}

	fmt.Fprintf(&report, "\nTotal: %d clientes", len(clientes))

	return report.String(), nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

// money renders an amount with thousands separators, N/A when unset.
func money(amount float64) string {
	if amount == 0 {
		return "N/A"
	}

	whole := strconv.FormatInt(int64(amount), 10)

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return "$" + grouped.String()
}

// Package script reproduce guiones de operaciones contra el motor de
// inventario. Un guion es un archivo JSON-lines: un comando por línea, con
// argumentos primitivos o mapas con clave string (el mismo contrato
// serializable que expone el motor a cualquier llamador externo).
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/inventario-crisis/internal/application/dto"
	"github.com/jhoicas/inventario-crisis/internal/application/inventory"
	"github.com/jhoicas/inventario-crisis/pkg/logger"
)

// LastRequestPlaceholder se sustituye por el request_id de la última
// solicitud de envío exitosa, para que los guiones puedan encadenar
// request_shipment → receive_shipment sin conocer IDs generados.
const LastRequestPlaceholder = "$last"

// Command es un comando del guion. Op decide qué campos aplican.
type Command struct {
	Op                   string         `json:"op"`
	ItemRequests         map[string]int `json:"item_requests,omitempty"`
	ReceivedItems        map[string]int `json:"received_items,omitempty"`
	DestinationWarehouse string         `json:"destination_warehouse,omitempty"`
	RequestID            string         `json:"request_id,omitempty"`
	FromWarehouse        string         `json:"from_warehouse,omitempty"`
	ToWarehouse          string         `json:"to_warehouse,omitempty"`
	WarehouseID          string         `json:"warehouse_id,omitempty"`
	ShowroomID           string         `json:"showroom_id,omitempty"`
	ItemID               string         `json:"item_id,omitempty"`
	Quantity             int            `json:"quantity,omitempty"`
}

// Runner despacha comandos decodificados hacia el motor.
type Runner struct {
	engine *inventory.Engine
	log    *logger.Logger

	lastRequestID string
}

// NewRunner construye el runner.
func NewRunner(engine *inventory.Engine, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{engine: engine, log: log.Component("script")}
}

// Run decodifica y ejecuta los comandos en orden estricto, uno a la vez, y
// devuelve los sobres de resultado en el mismo orden. Un comando mal formado
// o con op desconocida detiene el guion con error; los fallos de operación
// del motor no lo detienen (quedan en el log y en los resultados).
func (r *Runner) Run(rd io.Reader) ([]dto.OperationResult, error) {
	decoder := json.NewDecoder(rd)
	var results []dto.OperationResult
	for line := 1; ; line++ {
		var cmd Command
		if err := decoder.Decode(&cmd); err != nil {
			if errors.Is(err, io.EOF) {
				return results, nil
			}
			return results, fmt.Errorf("script: comando %d mal formado: %w", line, err)
		}
		result, err := r.Apply(cmd)
		if err != nil {
			return results, fmt.Errorf("script: comando %d: %w", line, err)
		}
		results = append(results, result)
	}
}

// Apply ejecuta un comando individual.
func (r *Runner) Apply(cmd Command) (dto.OperationResult, error) {
	var result dto.OperationResult
	switch cmd.Op {
	case dto.OpRequestShipment:
		result = r.engine.RequestShipment(cmd.ItemRequests, cmd.DestinationWarehouse)
		if result.Success {
			r.lastRequestID = result.RequestID
		}
	case dto.OpReceiveShipment:
		requestID := cmd.RequestID
		if requestID == LastRequestPlaceholder {
			requestID = r.lastRequestID
		}
		result = r.engine.ReceiveShipment(requestID, cmd.ReceivedItems)
	case dto.OpTransferWarehouse:
		result = r.engine.TransferBetweenWarehouses(cmd.FromWarehouse, cmd.ToWarehouse, cmd.ItemID, cmd.Quantity)
	case dto.OpMoveToShowroom:
		result = r.engine.MoveToShowroom(cmd.WarehouseID, cmd.ShowroomID, cmd.ItemID, cmd.Quantity)
	default:
		return dto.OperationResult{}, fmt.Errorf("script: operación desconocida %q", cmd.Op)
	}

	r.log.Debug().
		Str("op", cmd.Op).
		Bool("success", result.Success).
		Str("operation_id", result.OperationID).
		Msg(result.Message)
	return result, nil
}

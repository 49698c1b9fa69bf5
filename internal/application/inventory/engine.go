// Package inventory implementa el motor de inventario multi-ubicación: las
// cuatro operaciones mutadoras (solicitar envío, recibir envío, transferir
// entre bodegas, mover a sala) más la consulta de estado de solo lectura.
//
// Cada operación mutadora es atómica: {validar → (éxito: mutar + log) |
// (fallo: solo log)}. El orden de validación es fijo — primero existencia,
// luego cantidades/capacidad, al final la mutación — de modo que un fallo
// deja todas las entidades intactas.
package inventory

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-crisis/internal/application/dto"
	"github.com/jhoicas/inventario-crisis/internal/domain"
	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
	"github.com/jhoicas/inventario-crisis/internal/domain/scenario"
	"github.com/jhoicas/inventario-crisis/pkg/logger"
)

// Engine posee en exclusiva todas las ubicaciones, las solicitudes de envío
// y el log de operaciones. La ejecución es monohilo y síncrona: una instancia
// no admite llamadas concurrentes sin serialización externa.
type Engine struct {
	warehouses map[string]*entity.Warehouse
	showrooms  map[string]*entity.Showroom
	requests   map[string]*entity.ShipmentRequest
	catalog    entity.Catalog
	oplog      *OperationLog
	log        *logger.Logger
}

// New construye el motor a partir de un escenario validado. Todas las
// ubicaciones inician vacías; los items entran solo vía operaciones.
func New(sc *scenario.Scenario, log *logger.Logger) (*Engine, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	e := &Engine{
		warehouses: make(map[string]*entity.Warehouse, len(sc.Warehouses)),
		showrooms:  make(map[string]*entity.Showroom, len(sc.Showrooms)),
		requests:   map[string]*entity.ShipmentRequest{},
		catalog:    sc.EntityCatalog(),
		oplog:      NewOperationLog(),
		log:        log,
	}
	for _, wh := range sc.Warehouses {
		e.warehouses[wh.ID] = entity.NewWarehouse(wh.ID, wh.Name, wh.Address, wh.Capacity)
	}
	for _, sr := range sc.Showrooms {
		e.showrooms[sr.ID] = entity.NewShowroom(sr.ID, sr.Name, sr.Address, sr.WarehouseID, sr.Capacity)
	}
	return e, nil
}

// RequestShipment crea una solicitud de envío pendiente hacia una bodega
// destino, con fecha solicitada a 3 días. No muta inventario.
func (e *Engine) RequestShipment(itemRequests map[string]int, destinationWarehouse string) dto.OperationResult {
	requestID := operationID("REQ")
	res := dto.OperationResult{
		OperationType:        dto.OpRequestShipment,
		OperationID:          requestID,
		Timestamp:            time.Now(),
		ItemRequests:         copyQuantities(itemRequests),
		DestinationWarehouse: destinationWarehouse,
	}

	if _, ok := e.warehouses[destinationWarehouse]; !ok {
		return e.fail(res, "no se pudo crear la solicitud de envío",
			fmt.Errorf("la bodega destino %s no existe: %w", destinationWarehouse, domain.ErrNotFound))
	}
	if len(itemRequests) == 0 {
		return e.fail(res, "no se pudo crear la solicitud de envío",
			fmt.Errorf("se requiere al menos un item: %w", domain.ErrInvalidInput))
	}
	for itemID, qty := range itemRequests {
		if qty <= 0 {
			return e.fail(res, "no se pudo crear la solicitud de envío",
				fmt.Errorf("cantidad no positiva (%d) para %s: %w", qty, itemID, domain.ErrInvalidInput))
		}
	}

	e.requests[requestID] = &entity.ShipmentRequest{
		RequestID:            requestID,
		ItemRequests:         copyQuantities(itemRequests),
		DestinationWarehouse: destinationWarehouse,
		RequestedDate:        res.Timestamp.AddDate(0, 0, 3),
		Status:               entity.RequestStatusPending,
	}
	res.RequestID = requestID
	res.Status = entity.RequestStatusPending
	return e.ok(res, fmt.Sprintf("solicitud de envío %s creada para %s", requestID, destinationWarehouse))
}

// ReceiveShipment acredita los items recibidos en la bodega destino de la
// solicitud y la marca como entregada. La verificación de capacidad y la
// mutación son atómicas: si la verificación falla no se acredita nada.
func (e *Engine) ReceiveShipment(requestID string, receivedItems map[string]int) dto.OperationResult {
	res := dto.OperationResult{
		OperationType: dto.OpReceiveShipment,
		OperationID:   operationID("RCV"),
		Timestamp:     time.Now(),
		RequestID:     requestID,
		ReceivedItems: copyQuantities(receivedItems),
	}

	request, ok := e.requests[requestID]
	if !ok {
		return e.fail(res, "no se pudo recibir el envío",
			fmt.Errorf("la solicitud %s no existe: %w", requestID, domain.ErrNotFound))
	}
	res.DestinationWarehouse = request.DestinationWarehouse
	if request.Status == entity.RequestStatusCancelled {
		return e.fail(res, "no se pudo recibir el envío",
			fmt.Errorf("la solicitud %s está cancelada: %w", requestID, domain.ErrConflict))
	}
	if len(receivedItems) == 0 {
		return e.fail(res, "no se pudo recibir el envío",
			fmt.Errorf("se requiere al menos un item: %w", domain.ErrInvalidInput))
	}
	for itemID, qty := range receivedItems {
		if qty <= 0 {
			return e.fail(res, "no se pudo recibir el envío",
				fmt.Errorf("cantidad no positiva (%d) para %s: %w", qty, itemID, domain.ErrInvalidInput))
		}
	}
	warehouse := e.warehouses[request.DestinationWarehouse]
	available := warehouse.AvailableCapacity()
	total := 0
	for itemID, qty := range receivedItems {
		// Comparar contra el margen restante acota la suma en available,
		// así cantidades enormes no desbordan el acumulador.
		if qty > available-total {
			return e.fail(res, "no se pudo recibir el envío",
				fmt.Errorf("entrante excede la capacidad disponible %d de %s (item %s): %w",
					available, warehouse.ID, itemID, domain.ErrCapacityExceeded))
		}
		total += qty
	}

	for itemID, qty := range receivedItems {
		warehouse.Deposit(e.catalog.NewItem(itemID, qty), qty)
	}
	_ = request.MarkDelivered() // cancelada ya fue rechazada arriba
	res.Status = entity.RequestStatusDelivered
	return e.ok(res, fmt.Sprintf("envío %s recibido en %s (%d unidades)", requestID, warehouse.ID, total))
}

// TransferBetweenWarehouses mueve cantidad de un item entre dos bodegas,
// preservando nombre, precio y categoría.
func (e *Engine) TransferBetweenWarehouses(fromWarehouse, toWarehouse, itemID string, quantity int) dto.OperationResult {
	res := dto.OperationResult{
		OperationType: dto.OpTransferWarehouse,
		OperationID:   operationID("TXF"),
		Timestamp:     time.Now(),
		FromWarehouse: fromWarehouse,
		ToWarehouse:   toWarehouse,
		ItemID:        itemID,
		Quantity:      quantity,
	}

	source, ok := e.warehouses[fromWarehouse]
	if !ok {
		return e.fail(res, "no se pudo transferir",
			fmt.Errorf("la bodega origen %s no existe: %w", fromWarehouse, domain.ErrNotFound))
	}
	destination, ok := e.warehouses[toWarehouse]
	if !ok {
		return e.fail(res, "no se pudo transferir",
			fmt.Errorf("la bodega destino %s no existe: %w", toWarehouse, domain.ErrNotFound))
	}
	if fromWarehouse == toWarehouse {
		return e.fail(res, "no se pudo transferir",
			fmt.Errorf("origen y destino son la misma bodega %s: %w", fromWarehouse, domain.ErrInvalidInput))
	}
	if quantity <= 0 {
		return e.fail(res, "no se pudo transferir",
			fmt.Errorf("cantidad no positiva (%d): %w", quantity, domain.ErrInvalidInput))
	}
	if err := checkStock(&source.Location, itemID, quantity); err != nil {
		return e.fail(res, "no se pudo transferir", err)
	}
	if quantity > destination.AvailableCapacity() {
		return e.fail(res, "no se pudo transferir",
			fmt.Errorf("cantidad %d excede la capacidad disponible %d de %s: %w",
				quantity, destination.AvailableCapacity(), toWarehouse, domain.ErrCapacityExceeded))
	}

	destination.Deposit(source.Withdraw(itemID, quantity), quantity)
	return e.ok(res, fmt.Sprintf("transferidas %d unidades de %s de %s a %s",
		quantity, itemID, fromWarehouse, toWarehouse))
}

// MoveToShowroom mueve cantidad de un item desde una bodega hacia su sala de
// exhibición asociada; espeja la lógica de transferencia entre bodegas.
func (e *Engine) MoveToShowroom(warehouseID, showroomID, itemID string, quantity int) dto.OperationResult {
	res := dto.OperationResult{
		OperationType: dto.OpMoveToShowroom,
		OperationID:   operationID("SRM"),
		Timestamp:     time.Now(),
		WarehouseID:   warehouseID,
		ShowroomID:    showroomID,
		ItemID:        itemID,
		Quantity:      quantity,
	}

	warehouse, ok := e.warehouses[warehouseID]
	if !ok {
		return e.fail(res, "no se pudo mover a la sala",
			fmt.Errorf("la bodega %s no existe: %w", warehouseID, domain.ErrNotFound))
	}
	showroom, ok := e.showrooms[showroomID]
	if !ok {
		return e.fail(res, "no se pudo mover a la sala",
			fmt.Errorf("la sala %s no existe: %w", showroomID, domain.ErrNotFound))
	}
	if showroom.AssociatedWarehouseID != warehouseID {
		return e.fail(res, "no se pudo mover a la sala",
			fmt.Errorf("la sala %s no está asociada a la bodega %s: %w",
				showroomID, warehouseID, domain.ErrAssociationViolation))
	}
	if quantity <= 0 {
		return e.fail(res, "no se pudo mover a la sala",
			fmt.Errorf("cantidad no positiva (%d): %w", quantity, domain.ErrInvalidInput))
	}
	if err := checkStock(&warehouse.Location, itemID, quantity); err != nil {
		return e.fail(res, "no se pudo mover a la sala", err)
	}
	if quantity > showroom.AvailableCapacity() {
		return e.fail(res, "no se pudo mover a la sala",
			fmt.Errorf("cantidad %d excede la capacidad disponible %d de %s: %w",
				quantity, showroom.AvailableCapacity(), showroomID, domain.ErrCapacityExceeded))
	}

	showroom.Deposit(warehouse.Withdraw(itemID, quantity), quantity)
	return e.ok(res, fmt.Sprintf("movidas %d unidades de %s de la bodega %s a la sala %s",
		quantity, itemID, warehouseID, showroomID))
}

// Log devuelve una copia del log de operaciones en orden de inserción.
func (e *Engine) Log() []dto.OperationResult {
	return e.oplog.Entries()
}

// Operations devuelve el número de operaciones registradas.
func (e *Engine) Operations() int {
	return e.oplog.Len()
}

// Catalog devuelve el catálogo de items del motor.
func (e *Engine) Catalog() entity.Catalog {
	return e.catalog
}

// checkStock valida existencia y suficiencia de un item en el origen.
func checkStock(source *entity.Location, itemID string, quantity int) error {
	available := source.QuantityOf(itemID)
	if available == 0 {
		return fmt.Errorf("el item %s no existe en %s: %w", itemID, source.ID, domain.ErrNotFound)
	}
	if available < quantity {
		return fmt.Errorf("solicitadas %d, disponibles %d de %s en %s: %w",
			quantity, available, itemID, source.ID, domain.ErrInsufficientQuantity)
	}
	return nil
}

// ok registra una operación exitosa y devuelve el sobre.
func (e *Engine) ok(res dto.OperationResult, msg string) dto.OperationResult {
	res.Success = true
	res.Message = msg
	e.oplog.Append(res)
	e.log.Info().
		Str("operation", res.OperationType).
		Str("operation_id", res.OperationID).
		Msg(msg)
	return res
}

// fail registra una operación fallida (el estado quedó intacto) y devuelve el sobre.
func (e *Engine) fail(res dto.OperationResult, msg string, err error) dto.OperationResult {
	res.Success = false
	res.Error = err.Error()
	res.ErrorCategory = domain.Categorize(err)
	res.Message = msg + ": " + err.Error()
	e.oplog.Append(res)
	e.log.Warn().
		Str("operation", res.OperationType).
		Str("operation_id", res.OperationID).
		Str("error_category", string(res.ErrorCategory)).
		Msg(res.Message)
	return res
}

// operationID genera un identificador corto con prefijo (REQ_A1B2C3D4).
func operationID(prefix string) string {
	id := uuid.New()
	return prefix + "_" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

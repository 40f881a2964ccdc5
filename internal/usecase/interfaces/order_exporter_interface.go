package interfaces

import (
	"context"

	"foodcoop_orders/internal/domain/entities"
)

// IOrderExporter hands a freshly confirmed order to the downstream ERP
// intake. Export is best effort from the workflow's point of view: a failed
// export never rolls back the confirmation.

type IOrderExporter interface {
	ExportConfirmedOrder(ctx context.Context, cycleID string, order entities.Order) error
}

package order

import (
	"database/sql"

	"go.uber.org/zap"

	"candela/internal/cart"
	"candela/internal/order/controller"
	"candela/internal/order/repository"
	"candela/internal/order/service"
	"candela/internal/order/usecase"
)

func NewModule(db *sql.DB, carts *cart.Store, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	orderItemRepo := repository.NewMySQLOrderItemRepository(db)

	orderSvc := service.NewOrderService(db, orderRepo, orderItemRepo, logger)

	submitUC := usecase.NewSubmitOrderUseCase(carts, orderSvc, logger)
	statusUC := usecase.NewUpdateStatusUseCase(orderSvc, orderSvc, logger)
	duplicateUC := usecase.NewDuplicateOrderUseCase(orderSvc, orderSvc, logger)
	queryUC := usecase.NewQueryOrdersUseCase(orderSvc, orderSvc)

	return controller.NewOrderController(submitUC, statusUC, duplicateUC, queryUC, logger)
}

package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"candela/internal/catalog/controller"
	"candela/internal/catalog/repository"
	"candela/internal/catalog/service"
	"candela/internal/catalog/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*controller.CatalogController, *service.CatalogService) {
	productsRepo := repository.NewMySQLProductsRepository(db)
	assignmentsRepo := repository.NewMySQLAssignmentsRepository(db)

	catalogSvc := service.NewCatalogService(productsRepo)

	manageUC := usecase.NewManageProductsUseCase(productsRepo, assignmentsRepo, logger)
	browseUC := usecase.NewBrowseCatalogUseCase(catalogSvc)

	return controller.NewCatalogController(manageUC, browseUC, logger), catalogSvc
}

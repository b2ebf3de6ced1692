package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// openTestDB opens a fresh in-memory sqlite database with the full schema.
// TranslateError is on so constraint violations surface as the same domain
// errors the postgres driver produces.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.SalesInvoice{},
		&models.SalesInvoiceItem{},
		&models.SalesOrder{},
		&models.PurchaseOrder{},
		&models.Quotation{},
		&models.DeliveryChallan{},
		&models.WeightBridgeReport{},
		&models.MixDesign{},
		&models.Recipe{},
		&models.CubeTest{},
		&models.BatchList{},
		&models.Aggregate{},
		&models.CashBookEntry{},
	)
	require.NoError(t, err)

	return db
}

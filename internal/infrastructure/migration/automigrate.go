package migration

import (
	"revu/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReviewModel{},
		&models.UserFollowModel{},
	}
}

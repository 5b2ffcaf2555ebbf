package cmd

import (
	"fmt"

	"transportes/internal/adapters/out/postgres/conductorrepo"
	"transportes/internal/adapters/out/postgres/pedidorepo"
	"transportes/internal/adapters/out/postgres/usuariorepo"
	"transportes/internal/adapters/out/postgres/vehiculorepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to PostgreSQL and migrates the fleet schema.
func OpenDatabase(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&vehiculorepo.VehiculoDTO{},
		&conductorrepo.ConductorDTO{},
		&conductorrepo.ConductorVehiculoDTO{},
		&pedidorepo.PedidoDTO{},
		&usuariorepo.UsuarioDTO{},
		&usuariorepo.UsuarioRolDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

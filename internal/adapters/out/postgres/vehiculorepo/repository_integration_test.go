package vehiculorepo_test

import (
	"context"
	"testing"
	"time"

	"transportes/internal/adapters/out/postgres/vehiculorepo"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// VehiculoRepositoryIntegrationTestSuite provides integration tests for
// VehiculoRepository using PostgreSQL containers.
type VehiculoRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vehiculorepo.GormVehiculoRepository
	tracker    *MockAggregateTracker
}

func (suite *VehiculoRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&vehiculorepo.VehiculoDTO{}))
}

func (suite *VehiculoRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehiculos").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = vehiculorepo.NewGormVehiculoRepository(suite.db, suite.tracker)
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestAdd_ValidVehiculo_Success() {
	ctx := context.Background()
	v := suite.createTestVehiculo("ABC-123", 1000)

	err := suite.repository.Add(ctx, v)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&vehiculorepo.VehiculoDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesState() {
	ctx := context.Background()
	v := suite.createTestVehiculo("ABC-123", 1000)
	suite.Require().NoError(suite.repository.Add(ctx, v))

	loaded, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)

	suite.True(v.ID().IsEqual(loaded.ID()))
	suite.True(v.Placa().IsEqual(loaded.Placa()))
	suite.True(v.Capacidad().IsEqual(loaded.Capacidad()))
	suite.True(loaded.EstaActivo())
	suite.True(loaded.EstaLibre())
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestGetByPlaca_FindsVehiculo() {
	ctx := context.Background()
	v := suite.createTestVehiculo("XYZ-789", 2000)
	suite.Require().NoError(suite.repository.Add(ctx, v))

	placa, err := vehiculo.NewPlaca("xyz-789") // normalized on construction
	suite.Require().NoError(err)

	loaded, err := suite.repository.GetByPlaca(ctx, placa)
	suite.Require().NoError(err)
	suite.True(v.ID().IsEqual(loaded.ID()))
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestUpdate_AssignmentRoundTrip() {
	ctx := context.Background()
	v := suite.createTestVehiculo("ABC-123", 1000)
	suite.Require().NoError(suite.repository.Add(ctx, v))

	conductorID := kernel.NewUUID()
	suite.Require().NoError(v.AsignarConductor(conductorID))
	suite.Require().NoError(suite.repository.Update(ctx, v))

	loaded, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.ConductorID())
	suite.True(conductorID.IsEqual(*loaded.ConductorID()))

	// Returning the vehicle clears the column back to NULL
	suite.Require().NoError(loaded.DesasignarConductor(conductorID))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	libre, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Nil(libre.ConductorID())
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestGetAllLibres_FiltersAssignedAndInactive() {
	ctx := context.Background()

	libre := suite.createTestVehiculo("AAA-111", 1000)
	suite.Require().NoError(suite.repository.Add(ctx, libre))

	asignado := suite.createTestVehiculo("BBB-222", 1000)
	suite.Require().NoError(asignado.AsignarConductor(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, asignado))

	inactivo := suite.createTestVehiculo("CCC-333", 1000)
	suite.Require().NoError(inactivo.Desactivar())
	suite.Require().NoError(suite.repository.Add(ctx, inactivo))

	libres, err := suite.repository.GetAllLibres(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(libres, 1)
	suite.True(libre.ID().IsEqual(libres[0].ID()))
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestGetAllByConductor_ReturnsHeldVehicles() {
	ctx := context.Background()
	conductorID := kernel.NewUUID()

	primero := suite.createTestVehiculo("AAA-111", 1000)
	suite.Require().NoError(primero.AsignarConductor(conductorID))
	suite.Require().NoError(suite.repository.Add(ctx, primero))

	segundo := suite.createTestVehiculo("BBB-222", 1500)
	suite.Require().NoError(segundo.AsignarConductor(conductorID))
	suite.Require().NoError(suite.repository.Add(ctx, segundo))

	ajeno := suite.createTestVehiculo("CCC-333", 1000)
	suite.Require().NoError(ajeno.AsignarConductor(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, ajeno))

	held, err := suite.repository.GetAllByConductor(ctx, conductorID)
	suite.Require().NoError(err)
	suite.Len(held, 2)
}

func (suite *VehiculoRepositoryIntegrationTestSuite) TestAdd_DuplicatePlaca_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestVehiculo("ABC-123", 1000)))

	err := suite.repository.Add(ctx, suite.createTestVehiculo("ABC-123", 2000))
	suite.Require().Error(err)
}

func (suite *VehiculoRepositoryIntegrationTestSuite) createTestVehiculo(
	placaValor string, capacidadKg float64,
) *vehiculo.Vehiculo {
	placa, err := vehiculo.NewPlaca(placaValor)
	suite.Require().NoError(err)

	capacidad, err := vehiculo.NewCapacidadFromFloat(capacidadKg)
	suite.Require().NoError(err)

	v, err := vehiculo.NewVehiculo(kernel.NewUUID(), placa, capacidad)
	suite.Require().NoError(err)
	return v
}

func TestVehiculoRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(VehiculoRepositoryIntegrationTestSuite))
}

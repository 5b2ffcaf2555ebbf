package commands_test

import (
	"context"
	"time"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/domain/model/conductor"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"
	"transportes/internal/core/domain/model/usuario"
	"transportes/internal/core/domain/model/vehiculo"
	"transportes/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mock implementations for the command handler tests.

type MockVehiculoRepository struct{ mock.Mock }

func (m *MockVehiculoRepository) Add(ctx context.Context, aggregate *vehiculo.Vehiculo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehiculoRepository) Update(ctx context.Context, aggregate *vehiculo.Vehiculo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehiculoRepository) Get(ctx context.Context, id kernel.UUID) (*vehiculo.Vehiculo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehiculo.Vehiculo), args.Error(1)
}

func (m *MockVehiculoRepository) GetByPlaca(ctx context.Context, placa vehiculo.Placa) (*vehiculo.Vehiculo, error) {
	args := m.Called(ctx, placa)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehiculo.Vehiculo), args.Error(1)
}

func (m *MockVehiculoRepository) GetAllLibres(ctx context.Context) ([]*vehiculo.Vehiculo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehiculo.Vehiculo), args.Error(1)
}

func (m *MockVehiculoRepository) GetAllByConductor(
	ctx context.Context, conductorID kernel.UUID,
) ([]*vehiculo.Vehiculo, error) {
	args := m.Called(ctx, conductorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehiculo.Vehiculo), args.Error(1)
}

type MockConductorRepository struct{ mock.Mock }

func (m *MockConductorRepository) Add(ctx context.Context, aggregate *conductor.Conductor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockConductorRepository) Update(ctx context.Context, aggregate *conductor.Conductor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockConductorRepository) Get(ctx context.Context, id kernel.UUID) (*conductor.Conductor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conductor.Conductor), args.Error(1)
}

func (m *MockConductorRepository) GetByLicencia(
	ctx context.Context, licencia conductor.LicenciaConducir,
) (*conductor.Conductor, error) {
	args := m.Called(ctx, licencia)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conductor.Conductor), args.Error(1)
}

func (m *MockConductorRepository) GetAllSinVehiculos(ctx context.Context) ([]*conductor.Conductor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*conductor.Conductor), args.Error(1)
}

type MockPedidoRepository struct{ mock.Mock }

func (m *MockPedidoRepository) Add(ctx context.Context, aggregate *pedido.Pedido) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPedidoRepository) Update(ctx context.Context, aggregate *pedido.Pedido) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPedidoRepository) Get(ctx context.Context, id kernel.UUID) (*pedido.Pedido, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pedido.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) GetAllActivos(ctx context.Context) ([]*pedido.Pedido, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pedido.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) CountActivosByVehiculo(ctx context.Context, vehiculoID kernel.UUID) (int64, error) {
	args := m.Called(ctx, vehiculoID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUsuarioRepository struct{ mock.Mock }

func (m *MockUsuarioRepository) Add(ctx context.Context, aggregate *usuario.Usuario) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, aggregate *usuario.Usuario) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Get(ctx context.Context, id kernel.UUID) (*usuario.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usuario.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) GetByUsername(ctx context.Context, username string) (*usuario.Usuario, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usuario.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) GetByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usuario.Usuario), args.Error(1)
}

type MockVehiculoUoW struct{ mock.Mock }

func (m *MockVehiculoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehiculoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehiculoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehiculoUoW) VehiculoRepository() ports.VehiculoRepository {
	args := m.Called()
	return args.Get(0).(ports.VehiculoRepository)
}

type MockVehiculoUoWFactory struct{ mock.Mock }

func (m *MockVehiculoUoWFactory) Create() commands.VehiculoUoW {
	args := m.Called()
	return args.Get(0).(commands.VehiculoUoW)
}

type MockConductorUoW struct{ mock.Mock }

func (m *MockConductorUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConductorUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConductorUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConductorUoW) ConductorRepository() ports.ConductorRepository {
	args := m.Called()
	return args.Get(0).(ports.ConductorRepository)
}

type MockConductorUoWFactory struct{ mock.Mock }

func (m *MockConductorUoWFactory) Create() commands.ConductorUoW {
	args := m.Called()
	return args.Get(0).(commands.ConductorUoW)
}

type MockPedidoUoW struct{ mock.Mock }

func (m *MockPedidoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPedidoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPedidoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPedidoUoW) PedidoRepository() ports.PedidoRepository {
	args := m.Called()
	return args.Get(0).(ports.PedidoRepository)
}

type MockPedidoUoWFactory struct{ mock.Mock }

func (m *MockPedidoUoWFactory) Create() commands.PedidoUoW {
	args := m.Called()
	return args.Get(0).(commands.PedidoUoW)
}

type MockUsuarioUoW struct{ mock.Mock }

func (m *MockUsuarioUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUsuarioUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUsuarioUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUsuarioUoW) UsuarioRepository() ports.UsuarioRepository {
	args := m.Called()
	return args.Get(0).(ports.UsuarioRepository)
}

type MockUsuarioUoWFactory struct{ mock.Mock }

func (m *MockUsuarioUoWFactory) Create() commands.UsuarioUoW {
	args := m.Called()
	return args.Get(0).(commands.UsuarioUoW)
}

type MockFlotaUoW struct{ mock.Mock }

func (m *MockFlotaUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFlotaUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFlotaUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFlotaUoW) VehiculoRepository() ports.VehiculoRepository {
	args := m.Called()
	return args.Get(0).(ports.VehiculoRepository)
}

func (m *MockFlotaUoW) ConductorRepository() ports.ConductorRepository {
	args := m.Called()
	return args.Get(0).(ports.ConductorRepository)
}

func (m *MockFlotaUoW) PedidoRepository() ports.PedidoRepository {
	args := m.Called()
	return args.Get(0).(ports.PedidoRepository)
}

type MockFlotaUoWFactory struct{ mock.Mock }

func (m *MockFlotaUoWFactory) Create() commands.FlotaUoW {
	args := m.Called()
	return args.Get(0).(commands.FlotaUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) (bool, error) {
	args := m.Called(hash, password)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(aggregate *usuario.Usuario, now time.Time) (string, error) {
	args := m.Called(aggregate, now)
	return args.String(0), args.Error(1)
}

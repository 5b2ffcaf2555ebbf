package commands_test

import (
	"testing"

	"transportes/internal/core/application/usecases/commands"
	"transportes/internal/core/domain/model/kernel"
	"transportes/internal/core/domain/model/pedido"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCambiarEstadoPedidoCommandHandler_Handle_Iniciar(t *testing.T) {
	ctx := t.Context()
	vehiculoID := kernel.NewUUID()
	conductorID := kernel.NewUUID()
	testPedido := restoreTestPedido(t, pedido.Pendiente, &vehiculoID, &conductorID)

	cmd, err := commands.NewCambiarEstadoPedidoCommand(testPedido.ID(), pedido.EnProgreso)
	require.NoError(t, err)

	repo := new(MockPedidoRepository)
	uow := new(MockPedidoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(repo).Once(),
		repo.On("Get", ctx, testPedido.ID()).Return(testPedido, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*pedido.Pedido")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCambiarEstadoPedidoCommandHandler(factory)
	mutado, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, mutado)
	assert.Equal(t, pedido.EnProgreso, mutado.Estado())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCambiarEstadoPedidoCommandHandler_Handle_IniciarSinAsignacion(t *testing.T) {
	// Starting transport on an order with no vehicle and driver must fail
	// before the transition is attempted.
	ctx := t.Context()
	testPedido := restoreTestPedido(t, pedido.Pendiente, nil, nil)

	cmd, err := commands.NewCambiarEstadoPedidoCommand(testPedido.ID(), pedido.EnProgreso)
	require.NoError(t, err)

	repo := new(MockPedidoRepository)
	uow := new(MockPedidoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(repo).Once(),
		repo.On("Get", ctx, testPedido.ID()).Return(testPedido, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCambiarEstadoPedidoCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, pedido.ErrAsignacionFaltante)
	assert.Equal(t, pedido.Pendiente, testPedido.Estado())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCambiarEstadoPedidoCommandHandler_Handle_TransicionInvalida(t *testing.T) {
	ctx := t.Context()
	vehiculoID := kernel.NewUUID()
	conductorID := kernel.NewUUID()
	testPedido := restoreTestPedido(t, pedido.Completado, &vehiculoID, &conductorID)

	cmd, err := commands.NewCambiarEstadoPedidoCommand(testPedido.ID(), pedido.Cancelado)
	require.NoError(t, err)

	repo := new(MockPedidoRepository)
	uow := new(MockPedidoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(repo).Once(),
		repo.On("Get", ctx, testPedido.ID()).Return(testPedido, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCambiarEstadoPedidoCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, pedido.ErrTransicionInvalida)

	var transicion *pedido.TransicionInvalidaError
	require.ErrorAs(t, err, &transicion)
	assert.Equal(t, pedido.Completado, transicion.De)
	assert.Equal(t, pedido.Cancelado, transicion.A)
}

func TestCambiarEstadoPedidoCommandHandler_Handle_Completar(t *testing.T) {
	ctx := t.Context()
	vehiculoID := kernel.NewUUID()
	conductorID := kernel.NewUUID()
	testPedido := restoreTestPedido(t, pedido.EnProgreso, &vehiculoID, &conductorID)

	cmd, err := commands.NewCambiarEstadoPedidoCommand(testPedido.ID(), pedido.Completado)
	require.NoError(t, err)

	repo := new(MockPedidoRepository)
	uow := new(MockPedidoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PedidoRepository").Return(repo).Once(),
		repo.On("Get", ctx, testPedido.ID()).Return(testPedido, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*pedido.Pedido")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPedidoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCambiarEstadoPedidoCommandHandler(factory)
	mutado, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pedido.Completado, mutado.Estado())
	assert.False(t, mutado.EstaActivo())
}

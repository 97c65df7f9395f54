package commands_test

import (
	"context"
	"errors"
	"testing"

	"shiptracker/internal/core/application/usecases/commands"
	"shiptracker/internal/core/domain/model/history"
	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Patch(ctx context.Context, id int64, patch ports.ShipmentPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]*history.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*history.Entry), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func validCreateCommand(t *testing.T) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(
		"Alice", "555-0100", "1 Main St", "Cairo", "Alexandria", "", nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				// The store assigns the identifier on insert.
				aggregate := args.Get(1).(*shipment.Shipment)
				require.NoError(t, aggregate.AssignID(42))
			}).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*history.Entry")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(*history.Entry)
				require.Equal(t, int64(42), entry.OrderID())
				require.Equal(t, shipment.Pending, entry.Status())
				require.Equal(t, history.CreationNote, entry.Note())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
	shipmentRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*shipment.Shipment)
				require.NoError(t, aggregate.AssignID(42))
			}).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*history.Entry")).
			Return(errors.New("append error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	shipmentRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*shipment.Shipment)
				require.NoError(t, aggregate.AssignID(42))
			}).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*history.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

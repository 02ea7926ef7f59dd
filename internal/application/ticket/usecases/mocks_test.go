package usecases

import (
	"context"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error)
	FindByIDsFunc        func(ctx context.Context, ids []uint) ([]*ticket.Ticket, error)
	FindByOwnerIDsFunc   func(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error)
	DeleteByIDAndOwnerFunc func(ctx context.Context, id, ownerID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	if m.FindByOwnerIDsFunc != nil {
		return m.FindByOwnerIDsFunc(ctx, ownerIDs)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	if m.DeleteByIDAndOwnerFunc != nil {
		return m.DeleteByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil
}

type mockReviewRepository struct {
	SaveFunc                   func(ctx context.Context, r *review.Review) error
	UpdateFunc                 func(ctx context.Context, r *review.Review) error
	FindByIDAndOwnerFunc       func(ctx context.Context, id, ownerID uint) (*review.Review, error)
	FindByOwnerIDsFunc         func(ctx context.Context, ownerIDs []uint) ([]*review.Review, error)
	ExistsByTicketAndOwnerFunc func(ctx context.Context, ticketID, ownerID uint) (bool, error)
	DeleteByIDAndOwnerFunc     func(ctx context.Context, id, ownerID uint) error
	DeleteByTicketIDFunc       func(ctx context.Context, ticketID uint) error
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*review.Review, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockReviewRepository) FindByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	if m.FindByOwnerIDsFunc != nil {
		return m.FindByOwnerIDsFunc(ctx, ownerIDs)
	}
	return nil, nil
}

func (m *mockReviewRepository) ExistsByTicketAndOwner(ctx context.Context, ticketID, ownerID uint) (bool, error) {
	if m.ExistsByTicketAndOwnerFunc != nil {
		return m.ExistsByTicketAndOwnerFunc(ctx, ticketID, ownerID)
	}
	return false, nil
}

func (m *mockReviewRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	if m.DeleteByIDAndOwnerFunc != nil {
		return m.DeleteByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil
}

func (m *mockReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

// mockTxRunner runs the function directly, outside any transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}

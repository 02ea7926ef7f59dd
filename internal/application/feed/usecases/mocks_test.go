package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"revu/internal/domain/follow"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc           func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByIDAndOwnerFunc   func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error)
	FindByIDsFunc          func(ctx context.Context, ids []uint) ([]*ticket.Ticket, error)
	FindByOwnerIDsFunc     func(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error)
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

type mockFollowRepository struct {
	SaveFunc           func(ctx context.Context, e *follow.Edge) error
	ExistsFunc         func(ctx context.Context, followerID, followeeID uint) (bool, error)
	DeleteFunc         func(ctx context.Context, followerID, followeeID uint) error
	FindByFollowerFunc func(ctx context.Context, followerID uint) ([]*follow.Edge, error)
	FindByFolloweeFunc func(ctx context.Context, followeeID uint) ([]*follow.Edge, error)
	FolloweeIDsFunc    func(ctx context.Context, followerID uint) ([]uint, error)
}

func (m *mockFollowRepository) Save(ctx context.Context, e *follow.Edge) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, followerID, followeeID)
	}
	return false, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followeeID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, followerID, followeeID)
	}
	return nil
}

func (m *mockFollowRepository) FindByFollower(ctx context.Context, followerID uint) ([]*follow.Edge, error) {
	if m.FindByFollowerFunc != nil {
		return m.FindByFollowerFunc(ctx, followerID)
	}
	return nil, nil
}

func (m *mockFollowRepository) FindByFollowee(ctx context.Context, followeeID uint) ([]*follow.Edge, error) {
	if m.FindByFolloweeFunc != nil {
		return m.FindByFolloweeFunc(ctx, followeeID)
	}
	return nil, nil
}

func (m *mockFollowRepository) FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error) {
	if m.FolloweeIDsFunc != nil {
		return m.FolloweeIDsFunc(ctx, followerID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByIDsFunc        func(ctx context.Context, ids []uint) ([]*user.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

// mockRenderer passes content through unchanged so tests can assert on it.
type mockRenderer struct{}

func (m *mockRenderer) RenderSanitized(markdown string) (string, error) {
	return markdown, nil
}

func (m *mockRenderer) Sanitize(htmlContent string) string {
	return htmlContent
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func feedTicket(t *testing.T, id, ownerID uint, title string, createdAt time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, title, "a description", "", ownerID, createdAt, createdAt)
	require.NoError(t, err)
	return tk
}

func feedReview(t *testing.T, id, ticketID, ownerID uint, headline string, createdAt time.Time) *review.Review {
	t.Helper()
	r, err := review.ReconstructReview(id, ticketID, 4, headline, "a body", ownerID, createdAt, createdAt)
	require.NoError(t, err)
	return r
}

func feedUser(t *testing.T, id uint, username string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, username, username+"@example.com", "hash", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

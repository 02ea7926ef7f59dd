package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"revu/internal/domain/follow"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

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

func testUser(t *testing.T, id uint, username string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, username, username+"@example.com", "hash", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func testEdge(t *testing.T, id, followerID, followeeID uint) *follow.Edge {
	t.Helper()
	e, err := follow.ReconstructEdge(id, followerID, followeeID, time.Now())
	require.NoError(t, err)
	return e
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

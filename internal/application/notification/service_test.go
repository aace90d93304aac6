package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chatwith-notifications/internal/domain"
	"github.com/chatwith-notifications/internal/infrastructure/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if stored, _ := args.Get(0).(*domain.Notification); stored != nil {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, p dynamo.ListParams) ([]domain.Notification, int, error) {
	args := m.Called(ctx, p)
	if rows, _ := args.Get(0).([]domain.Notification); rows != nil {
		return rows, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func testOpts() Options {
	return Options{StoreTimeout: time.Second, MaxRetries: 3, RetryBaseDelay: time.Millisecond}
}

// --- Create ---

func TestCreate_NormalizesBeforeInsert(t *testing.T) {
	repo := &mockRepo{}
	var inserted *domain.Notification
	repo.On("Insert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(1).(*domain.Notification) }).
		Return(&domain.Notification{NotificationID: "01TEST"}, nil)

	svc := NewService(repo, testOpts())
	stored, err := svc.Create(context.Background(), domain.NotificationInput{
		Lastname:  " Smith ",
		Firstname: " John",
		Email:     " John.Smith@Example.COM ",
		Subject:   "Test ",
		Details:   " details ",
	})

	require.NoError(t, err)
	assert.Equal(t, "01TEST", stored.NotificationID)
	require.NotNil(t, inserted)
	assert.Equal(t, "Smith", inserted.Lastname)
	assert.Equal(t, "john.smith@example.com", inserted.Email)
	assert.Equal(t, domain.StatusNew, inserted.Status)
	assert.WithinDuration(t, time.Now().UTC(), inserted.CreatedAt, 5*time.Second)
	repo.AssertExpectations(t)
}

func TestCreate_StoreErrorPassesThrough(t *testing.T) {
	repo := &mockRepo{}
	storeErr := errors.New("connection refused")
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, storeErr)

	svc := NewService(repo, testOpts())
	_, err := svc.Create(context.Background(), domain.NotificationInput{Lastname: "Smith"})

	assert.ErrorIs(t, err, storeErr)
	// Inserts are never retried.
	repo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestCreate_EmptyInsertResult(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyInsert)

	svc := NewService(repo, testOpts())
	_, err := svc.Create(context.Background(), domain.NotificationInput{Lastname: "Smith"})

	assert.ErrorIs(t, err, domain.ErrEmptyInsert)
}

// --- List ---

func TestList_HappyPath(t *testing.T) {
	repo := &mockRepo{}
	rows := []domain.Notification{{NotificationID: "01A"}, {NotificationID: "01B"}}
	p := dynamo.ListParams{Limit: 50, Offset: 0}
	repo.On("List", mock.Anything, p).Return(rows, 2, nil)

	svc := NewService(repo, testOpts())
	got, count, err := svc.List(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, 2, count)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestList_RetriesTransientFailure(t *testing.T) {
	repo := &mockRepo{}
	p := dynamo.ListParams{Limit: 10}
	repo.On("List", mock.Anything, p).Return(nil, 0, errors.New("throttled")).Once()
	repo.On("List", mock.Anything, p).Return([]domain.Notification{}, 0, nil).Once()

	svc := NewService(repo, testOpts())
	rows, count, err := svc.List(context.Background(), p)

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, count)
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestList_ExhaustsRetries(t *testing.T) {
	repo := &mockRepo{}
	storeErr := errors.New("table unavailable")
	p := dynamo.ListParams{Limit: 10}
	repo.On("List", mock.Anything, p).Return(nil, 0, storeErr)

	svc := NewService(repo, testOpts())
	_, _, err := svc.List(context.Background(), p)

	assert.ErrorIs(t, err, storeErr)
	repo.AssertNumberOfCalls(t, "List", 3)
}

func TestList_CanceledContextStopsRetrying(t *testing.T) {
	repo := &mockRepo{}
	p := dynamo.ListParams{Limit: 10}
	repo.On("List", mock.Anything, p).Return(nil, 0, errors.New("throttled"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(repo, Options{StoreTimeout: time.Second, MaxRetries: 3, RetryBaseDelay: 10 * time.Millisecond})
	_, _, err := svc.List(ctx, p)

	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNumberOfCalls(t, "List", 1)
}

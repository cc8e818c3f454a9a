package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mindwell-co/beacon/internal/domain"
	"github.com/mindwell-co/beacon/internal/embedding"
)

// MockResourceCatalog mocks the ResourceCatalog interface.
type MockResourceCatalog struct {
	mock.Mock
}

func (m *MockResourceCatalog) Create(ctx context.Context, r *domain.Resource) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockResourceCatalog) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceCatalog) GetFeatured(ctx context.Context, limit int) ([]domain.Resource, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceCatalog) GetEmergency(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceCatalog) FindSimilar(ctx context.Context, emb []float32, limit int) ([]domain.ResourceWithScore, error) {
	args := m.Called(ctx, emb, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceWithScore), args.Error(1)
}

// MockUserHistoryStore mocks the UserHistoryStore interface.
type MockUserHistoryStore struct {
	mock.Mock
}

func (m *MockUserHistoryStore) Record(ctx context.Context, e *domain.UsageEvent) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserHistoryStore) Recent(ctx context.Context, userID string, limit int) ([]domain.UsageEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageEvent), args.Error(1)
}

func setupResourceTest() (*ResourceService, *MockResourceCatalog, *MockUserHistoryStore, *embedding.MockClient) {
	catalog := new(MockResourceCatalog)
	history := new(MockUserHistoryStore)
	embedder := embedding.NewMockClient()
	svc := NewResourceService(catalog, history, embedder, testLogger())
	return svc, catalog, history, embedder
}

func TestResourceService_Create(t *testing.T) {
	svc, catalog, _, embedder := setupResourceTest()
	catalog.On("Create", mock.Anything, mock.Anything).Return(nil)

	r := &domain.Resource{Title: "Sleep Hygiene Basics", Description: "Habits for better rest"}
	err := svc.Create(context.Background(), r)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Len(t, r.Embedding, 1536)
	assert.Len(t, embedder.EmbedCall, 1)
	catalog.AssertExpectations(t)
}

func TestResourceService_Create_RequiresTitle(t *testing.T) {
	svc, catalog, _, _ := setupResourceTest()

	err := svc.Create(context.Background(), &domain.Resource{Description: "No title"})

	assert.ErrorIs(t, err, ErrResourceTitleEmpty)
	catalog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResourceService_Create_EmbeddingFailureIsAbsorbed(t *testing.T) {
	svc, catalog, _, embedder := setupResourceTest()
	embedder.EmbedErr = errors.New("provider down")
	catalog.On("Create", mock.Anything, mock.Anything).Return(nil)

	r := &domain.Resource{Title: "Sleep Hygiene Basics"}
	err := svc.Create(context.Background(), r)

	assert.NoError(t, err)
	assert.Nil(t, r.Embedding)
	catalog.AssertExpectations(t)
}

func TestResourceService_Search(t *testing.T) {
	svc, catalog, _, _ := setupResourceTest()
	results := []domain.ResourceWithScore{
		{Resource: domain.Resource{ID: uuid.New(), Title: "Grounding Exercise"}, Score: 0.91},
	}
	catalog.On("FindSimilar", mock.Anything, mock.Anything, 5).Return(results, nil)

	got, err := svc.Search(context.Background(), "calming techniques", 5)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Grounding Exercise", got[0].Title)
	catalog.AssertExpectations(t)
}

func TestResourceService_Search_RequiresQuery(t *testing.T) {
	svc, _, _, _ := setupResourceTest()

	_, err := svc.Search(context.Background(), "", 5)
	assert.ErrorIs(t, err, ErrSearchQueryEmpty)
}

func TestResourceService_Search_EmbeddingFailure(t *testing.T) {
	svc, _, _, embedder := setupResourceTest()
	embedder.EmbedErr = errors.New("provider down")

	_, err := svc.Search(context.Background(), "calming techniques", 5)
	assert.Error(t, err)
}

func TestResourceService_Search_NoEmbedder(t *testing.T) {
	catalog := new(MockResourceCatalog)
	history := new(MockUserHistoryStore)
	svc := NewResourceService(catalog, history, nil, testLogger())

	_, err := svc.Search(context.Background(), "calming techniques", 5)
	assert.Error(t, err)
}

func TestResourceService_RecordUsage(t *testing.T) {
	svc, _, history, _ := setupResourceTest()
	history.On("Record", mock.Anything, mock.Anything).Return(nil)

	e := &domain.UsageEvent{UserID: "u1", ResourceID: uuid.New(), Action: domain.ActionCompleted}
	err := svc.RecordUsage(context.Background(), e)

	assert.NoError(t, err)
	history.AssertExpectations(t)
}

func TestResourceService_RecordUsage_Validation(t *testing.T) {
	svc, _, _, _ := setupResourceTest()
	ctx := context.Background()

	err := svc.RecordUsage(ctx, &domain.UsageEvent{ResourceID: uuid.New(), Action: domain.ActionAccessed})
	assert.ErrorIs(t, err, ErrUserIDMissing)

	err = svc.RecordUsage(ctx, &domain.UsageEvent{UserID: "u1", Action: domain.ActionAccessed})
	assert.ErrorIs(t, err, ErrResourceIDMissing)

	err = svc.RecordUsage(ctx, &domain.UsageEvent{UserID: "u1", ResourceID: uuid.New(), Action: "shared"})
	assert.ErrorIs(t, err, ErrInvalidUsageAction)
}

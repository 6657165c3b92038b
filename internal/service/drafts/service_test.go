package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	draftRepo "github.com/m04kA/SMC-OrderIntakeService/internal/infra/storage/draft"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingTx запоминает, какие транзакции открывались
type recordingTx struct {
	kinds []string
}

func (r *recordingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	r.kinds = append(r.kinds, "serializable")
	return fn(ctx)
}

func (r *recordingTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	r.kinds = append(r.kinds, "read_only")
	return fn(ctx)
}

type fakeRepo struct {
	drafts     map[uuid.UUID]*domain.Draft
	getErr     error
	staleErr   error
	staleCut   time.Time
	staleCount int64
}

func newRepo(drafts ...*domain.Draft) *fakeRepo {
	repo := &fakeRepo{drafts: make(map[uuid.UUID]*domain.Draft)}
	for _, d := range drafts {
		repo.drafts[d.ID] = d
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	d, ok := f.drafts[id]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *d
	copied.Operations = append([]domain.Operation(nil), d.Operations...)
	return &copied, nil
}

func (f *fakeRepo) DeleteLastOperation(_ context.Context, id uuid.UUID) error {
	d, ok := f.drafts[id]
	if !ok {
		return draftRepo.ErrDraftNotFound
	}
	if len(d.Operations) == 0 {
		return draftRepo.ErrNoOperations
	}
	d.Operations = d.Operations[:len(d.Operations)-1]
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.drafts[id]; !ok {
		return draftRepo.ErrDraftNotFound
	}
	delete(f.drafts, id)
	return nil
}

func (f *fakeRepo) DeleteStale(_ context.Context, before time.Time) (int64, error) {
	f.staleCut = before
	return f.staleCount, f.staleErr
}

const ownerID = int64(5)

func newDraft(ops ...domain.Operation) *domain.Draft {
	return &domain.Draft{
		ID:     uuid.New(),
		UserID: ownerID,
		Catalog: domain.NewCatalog([]domain.CatalogItem{
			{
				ID:              "clipping",
				Name:            "Clipping Path",
				ComplexityTiers: []domain.Tier{{ID: "basic", Name: "Basic", Price: 5}},
			},
			{ID: "bg", Name: "Background Removal", Disables: []string{"Clipping Path"}},
		}),
		Operations: ops,
	}
}

var (
	toggleClipping = domain.Operation{Kind: domain.OpToggleItem, ItemID: "clipping"}
	chooseBasic    = domain.Operation{Kind: domain.OpChooseComplexity, ItemID: "clipping", TierID: "basic"}
)

func TestService_GetView(t *testing.T) {
	draft := newDraft(toggleClipping)
	svc := NewService(newRepo(draft), passTx{}, nopLogger{})

	view, err := svc.GetView(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Revision)
	assert.True(t, view.Summary.Items[0].IsSelected)
	assert.False(t, view.Summary.Items[1].IsSelectable)
	require.Len(t, view.Summary.Errors, 1)
	assert.Equal(t, domain.MsgSelectComplexity, view.Summary.Errors[0].Message)
}

func TestService_Validate(t *testing.T) {
	t.Run("invalid selection has no preview", func(t *testing.T) {
		draft := newDraft(toggleClipping)
		svc := NewService(newRepo(draft), passTx{}, nopLogger{})

		report, err := svc.Validate(context.Background(), draft.ID, ownerID)
		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Len(t, report.Errors, 1)
		assert.Nil(t, report.Preview)
	})

	t.Run("valid selection has preview and quote", func(t *testing.T) {
		draft := newDraft(toggleClipping, chooseBasic)
		svc := NewService(newRepo(draft), passTx{}, nopLogger{})

		report, err := svc.Validate(context.Background(), draft.ID, ownerID)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		require.NotNil(t, report.Preview)
		assert.Equal(t, "clipping", report.Preview.Items[0].ItemID)
		assert.Equal(t, "5", report.Quote.Total.String())
	})
}

func TestService_Undo(t *testing.T) {
	draft := newDraft(toggleClipping, chooseBasic)
	repo := newRepo(draft)
	svc := NewService(repo, passTx{}, nopLogger{})

	view, err := svc.Undo(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Revision)
	require.NotNil(t, view.Summary.Items[0].Selection)
	assert.Nil(t, view.Summary.Items[0].Selection.ChosenComplexity)
	assert.Equal(t, []domain.Operation{toggleClipping}, repo.drafts[draft.ID].Operations)

	_, err = svc.Undo(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)

	_, err = svc.Undo(context.Background(), draft.ID, ownerID)
	require.ErrorIs(t, err, ErrNothingToUndo)
}

func TestService_Delete(t *testing.T) {
	draft := newDraft(toggleClipping)
	repo := newRepo(draft)
	svc := NewService(repo, passTx{}, nopLogger{})

	require.ErrorIs(t, svc.Delete(context.Background(), draft.ID, ownerID+1), ErrAccessDenied)
	require.NoError(t, svc.Delete(context.Background(), draft.ID, ownerID))
	assert.Empty(t, repo.drafts)

	_, err := svc.GetView(context.Background(), draft.ID, ownerID)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestService_ReadsUseReadOnlyTransaction(t *testing.T) {
	draft := newDraft(toggleClipping, chooseBasic)
	tx := &recordingTx{}
	svc := NewService(newRepo(draft), tx, nopLogger{})

	_, err := svc.GetView(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)
	_, err = svc.Validate(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)
	_, err = svc.Undo(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, []string{"read_only", "read_only", "serializable"}, tx.kinds)
}

func TestService_DraftBeingSubmittedIsReadOnly(t *testing.T) {
	draft := newDraft(toggleClipping, chooseBasic)
	draft.Status = domain.DraftStatusSubmitting
	repo := newRepo(draft)
	svc := NewService(repo, passTx{}, nopLogger{})

	_, err := svc.Undo(context.Background(), draft.ID, ownerID)
	require.ErrorIs(t, err, ErrDraftSubmitting)
	assert.Len(t, repo.drafts[draft.ID].Operations, 2)

	require.ErrorIs(t, svc.Delete(context.Background(), draft.ID, ownerID), ErrDraftSubmitting)
	assert.Contains(t, repo.drafts, draft.ID)

	view, err := svc.GetView(context.Background(), draft.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Revision)
}

func TestService_AccessErrors(t *testing.T) {
	draft := newDraft()

	tests := []struct {
		name    string
		repo    *fakeRepo
		draftID uuid.UUID
		userID  int64
		wantErr error
	}{
		{name: "not found", repo: newRepo(draft), draftID: uuid.New(), userID: ownerID, wantErr: ErrDraftNotFound},
		{name: "foreign draft", repo: newRepo(draft), draftID: draft.ID, userID: ownerID + 1, wantErr: ErrAccessDenied},
		{name: "storage failure", repo: &fakeRepo{getErr: errors.New("db down")}, draftID: draft.ID, userID: ownerID, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo, passTx{}, nopLogger{})

			_, err := svc.GetView(context.Background(), tt.draftID, tt.userID)
			require.ErrorIs(t, err, tt.wantErr)

			_, err = svc.Validate(context.Background(), tt.draftID, tt.userID)
			require.ErrorIs(t, err, tt.wantErr)

			_, err = svc.Undo(context.Background(), tt.draftID, tt.userID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_PurgeStale(t *testing.T) {
	repo := newRepo()
	repo.staleCount = 2
	svc := NewService(repo, passTx{}, nopLogger{})

	before := time.Now()
	deleted, err := svc.PurgeStale(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.WithinDuration(t, before.Add(-time.Hour), repo.staleCut, time.Second)

	_, err = svc.PurgeStale(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	repo.staleErr = errors.New("db down")
	_, err = svc.PurgeStale(context.Background(), time.Hour)
	require.ErrorIs(t, err, ErrInternal)
}

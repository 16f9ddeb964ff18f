package escalation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/store/cases"
	"github.com/franchise-ops/collections/receivables/store/invitations"
)

type storedCase struct {
	id        int64
	stage     string
	createdAt time.Time
	unit      *model.Unit
}

// memoryStore behaves like the Postgres tables, including the unique case_id constraint.
type memoryStore struct {
	mu          sync.Mutex
	cases       []storedCase
	invitations map[int64]invitations.Invitation
	nextID      int64
}

func newMemoryStore(cs ...storedCase) *memoryStore {
	return &memoryStore{cases: cs, invitations: map[int64]invitations.Invitation{}}
}

func (m *memoryStore) ListCasesByStageBefore(_ context.Context, arg cases.ListCasesByStageBeforeParams) ([]cases.ListCasesByStageBeforeRow, error) {
	var rows []cases.ListCasesByStageBeforeRow
	for _, c := range m.cases {
		if c.stage != arg.Stage || c.createdAt.After(arg.CreatedAt.Time) {
			continue
		}
		row := cases.ListCasesByStageBeforeRow{
			ID:        c.id,
			CreatedAt: pgtype.Timestamptz{Time: c.createdAt, Valid: true},
		}
		if c.unit != nil {
			row.UnitID = pgtype.Int8{Int64: c.unit.ID, Valid: true}
			row.UnitName = pgtype.Text{String: c.unit.Name, Valid: true}
			row.UnitEmail = pgtype.Text{String: c.unit.Email, Valid: c.unit.Email != ""}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (m *memoryStore) InvitationExists(_ context.Context, caseID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.invitations[caseID]
	return ok, nil
}

func (m *memoryStore) CreateInvitation(_ context.Context, arg invitations.CreateInvitationParams) (invitations.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.invitations[arg.CaseID]; ok {
		return invitations.Invitation{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "invitations_case_id_key"}
	}
	m.nextID++
	inv := invitations.Invitation{
		ID:             m.nextID,
		CaseID:         arg.CaseID,
		UnitID:         arg.UnitID,
		Status:         arg.Status,
		SchedulingLink: arg.SchedulingLink,
	}
	m.invitations[arg.CaseID] = inv
	return inv, nil
}

type recordingSender struct {
	mu   sync.Mutex
	sent []model.Email
}

func (r *recordingSender) Send(_ context.Context, email model.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, email)
	return nil
}

func newMemoryBusiness(store *memoryStore, sender *recordingSender) *business {
	return &business{
		caseRepo:       store,
		invitationRepo: store,
		sender:         sender,
		config:         testConfig(),
		now:            func() time.Time { return fixedNow },
		dispatch:       runSync,
	}
}

func daysAgo(days int) time.Time {
	return fixedNow.Add(-time.Duration(days) * 24 * time.Hour)
}

func TestRun_SecondRunInvitesNobody(t *testing.T) {
	store := newMemoryStore(
		storedCase{id: 1, stage: "legal", createdAt: daysAgo(8), unit: &model.Unit{ID: 10, Name: "Centro", Email: "centro@example.com"}},
		storedCase{id: 2, stage: "legal", createdAt: daysAgo(30), unit: &model.Unit{ID: 11, Name: "Norte", Email: "norte@example.com"}},
	)
	sender := &recordingSender{}
	business := newMemoryBusiness(store, sender)

	first, err := business.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.InvitedCount)

	second, err := business.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Accepted)
	assert.Equal(t, 0, second.InvitedCount)

	assert.Len(t, store.invitations, 2)
	assert.Len(t, sender.sent, 2)
	for caseID, inv := range store.invitations {
		assert.Equal(t, caseID, inv.CaseID)
		assert.Equal(t, "invite_sent", inv.Status)
		assert.Equal(t, "https://agenda.example.com/juridico", inv.SchedulingLink)
	}
}

func TestRun_AgeAndStageFilter(t *testing.T) {
	store := newMemoryStore(
		storedCase{id: 1, stage: "legal", createdAt: daysAgo(6), unit: &model.Unit{ID: 10, Name: "Recente", Email: "recente@example.com"}},
		storedCase{id: 2, stage: "legal", createdAt: daysAgo(8), unit: &model.Unit{ID: 11, Name: "Antiga", Email: "antiga@example.com"}},
		storedCase{id: 3, stage: "notice", createdAt: daysAgo(40), unit: &model.Unit{ID: 12, Name: "Outra", Email: "outra@example.com"}},
	)
	sender := &recordingSender{}

	result, err := newMemoryBusiness(store, sender).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.InvitedCount)
	assert.Contains(t, store.invitations, int64(2))
	assert.NotContains(t, store.invitations, int64(1))
	assert.NotContains(t, store.invitations, int64(3))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "antiga@example.com", sender.sent[0].To)
}

func TestRun_CutoffIsInclusive(t *testing.T) {
	store := newMemoryStore(
		storedCase{id: 1, stage: "legal", createdAt: daysAgo(7), unit: &model.Unit{ID: 10, Name: "No Limite", Email: "limite@example.com"}},
		storedCase{id: 2, stage: "legal", createdAt: daysAgo(7).Add(time.Second), unit: &model.Unit{ID: 11, Name: "Quase", Email: "quase@example.com"}},
	)
	sender := &recordingSender{}

	result, err := newMemoryBusiness(store, sender).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.InvitedCount)
	assert.Contains(t, store.invitations, int64(1))
	assert.NotContains(t, store.invitations, int64(2))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "limite@example.com", sender.sent[0].To)
}

func TestRun_PreviouslyInvitedCaseIsNeverEmailed(t *testing.T) {
	store := newMemoryStore(
		storedCase{id: 1, stage: "legal", createdAt: daysAgo(10), unit: &model.Unit{ID: 10, Name: "Centro", Email: "centro@example.com"}},
	)
	store.invitations[1] = invitations.Invitation{ID: 99, CaseID: 1, Status: "invite_sent"}
	sender := &recordingSender{}
	business := newMemoryBusiness(store, sender)

	for i := 0; i < 3; i++ {
		result, err := business.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.InvitedCount)
	}

	assert.Len(t, store.invitations, 1)
	assert.Empty(t, sender.sent)
}

func TestRun_MissingUnitAndMissingEmail(t *testing.T) {
	store := newMemoryStore(
		storedCase{id: 1, stage: "legal", createdAt: daysAgo(10)},
		storedCase{id: 2, stage: "legal", createdAt: daysAgo(10), unit: &model.Unit{ID: 11, Name: "Sem Email"}},
	)
	sender := &recordingSender{}

	result, err := newMemoryBusiness(store, sender).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.InvitedCount)
	assert.NotContains(t, store.invitations, int64(1))
	assert.Contains(t, store.invitations, int64(2))
	assert.Empty(t, sender.sent)
}

func TestRun_OverlappingRunsInviteOnce(t *testing.T) {
	store := newMemoryStore(
		storedCase{id: 1, stage: "legal", createdAt: daysAgo(9), unit: &model.Unit{ID: 10, Name: "Centro", Email: "centro@example.com"}},
		storedCase{id: 2, stage: "legal", createdAt: daysAgo(9), unit: &model.Unit{ID: 11, Name: "Sul", Email: "sul@example.com"}},
		storedCase{id: 3, stage: "legal", createdAt: daysAgo(9), unit: &model.Unit{ID: 12, Name: "Leste", Email: "leste@example.com"}},
	)
	sender := &recordingSender{}
	business := newMemoryBusiness(store, sender)

	var wg sync.WaitGroup
	totals := make([]int, 4)
	for i := range totals {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := business.Run(context.Background())
			if err == nil {
				totals[i] = result.InvitedCount
			}
		}(i)
	}
	wg.Wait()

	sum := 0
	for _, n := range totals {
		sum += n
	}
	assert.Equal(t, 3, sum)
	assert.Len(t, store.invitations, 3)
	assert.Len(t, sender.sent, 3)
}

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expopass/internal/domain"
)

// memRegistrationRepository is a mutex-guarded in-memory repository with real
// compare-and-set semantics, so concurrent check-ins exercise the same race
// the postgres conditional UPDATE resolves.
type memRegistrationRepository struct {
	mu      sync.Mutex
	byID    map[string]*domain.Registration
	byToken map[string]string
}

func newMemRegistrationRepository(regs ...*domain.Registration) *memRegistrationRepository {
	r := &memRegistrationRepository{
		byID:    make(map[string]*domain.Registration),
		byToken: make(map[string]string),
	}
	for _, reg := range regs {
		clone := *reg
		r.byID[reg.ID] = &clone
		r.byToken[reg.Token] = reg.ID
	}
	return r
}

func (r *memRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	return nil
}

func (r *memRegistrationRepository) GetByToken(ctx context.Context, token string) (*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *r.byID[id]
	return &clone, nil
}

func (r *memRegistrationRepository) GetByAttendeeAndEvent(ctx context.Context, attendeeID, eventID string) (*domain.Registration, error) {
	return nil, domain.ErrNotFound
}

func (r *memRegistrationRepository) ListByAttendeeID(ctx context.Context, attendeeID string) ([]*domain.Registration, error) {
	return nil, nil
}

func (r *memRegistrationRepository) MarkAttended(ctx context.Context, id string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok || reg.Attended {
		return false, nil
	}
	reg.Attended = true
	attendedAt := at
	reg.AttendedAt = &attendedAt
	return true, nil
}

type mockScanRepository struct {
	mu      sync.Mutex
	records []*domain.ScanRecord
	err     error
}

func (m *mockScanRepository) Create(ctx context.Context, rec *domain.ScanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func checkInFixture(t *testing.T) (*memRegistrationRepository, *mockEventRepository, *mockScanRepository, time.Time) {
	t.Helper()
	events := &mockEventRepository{events: map[string]*domain.Event{
		"event-1": {
			ID: "event-1", Name: "Spring Expo",
			Date:      time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			StartTime: domain.TimeOfDay{Hour: 9},
			EndTime:   domain.TimeOfDay{Hour: 17},
		},
	}}
	regs := newMemRegistrationRepository(&domain.Registration{
		ID: "reg-1", AttendeeID: "att-1", EventID: "event-1", Token: "tok-1",
	})
	scans := &mockScanRepository{}
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	return regs, events, scans, now
}

func TestCheckInService_InvalidToken(t *testing.T) {
	regs, events, scans, now := checkInFixture(t)
	svc := NewCheckInService(testLogger(), regs, events, scans)

	out, err := svc.CheckIn(context.Background(), "unknown", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalidToken, out.Status)

	require.Len(t, scans.records, 1)
	assert.Equal(t, domain.StatusInvalidToken, scans.records[0].Status)
	assert.Empty(t, scans.records[0].RegistrationID)
}

func TestCheckInService_Success(t *testing.T) {
	regs, events, scans, now := checkInFixture(t)
	svc := NewCheckInService(testLogger(), regs, events, scans)

	out, err := svc.CheckIn(context.Background(), "tok-1", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, out.Status)
	assert.True(t, out.Attended)
	require.NotNil(t, out.AttendedAt)
	assert.True(t, out.AttendedAt.Equal(now))

	stored, err := regs.GetByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.True(t, stored.Attended)
	require.NotNil(t, stored.AttendedAt)
	assert.True(t, stored.AttendedAt.Equal(now))

	require.Len(t, scans.records, 1)
	assert.Equal(t, "reg-1", scans.records[0].RegistrationID)
	assert.Equal(t, domain.StatusSuccess, scans.records[0].Status)
}

func TestCheckInService_SecondScanAlreadyAttended(t *testing.T) {
	regs, events, scans, now := checkInFixture(t)
	svc := NewCheckInService(testLogger(), regs, events, scans)

	first, err := svc.CheckIn(context.Background(), "tok-1", now)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSuccess, first.Status)

	second, err := svc.CheckIn(context.Background(), "tok-1", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAlreadyAttended, second.Status)
	require.NotNil(t, second.AttendedAt)
	assert.True(t, second.AttendedAt.Equal(now))
}

func TestCheckInService_OrphanedRegistration(t *testing.T) {
	regs, events, scans, now := checkInFixture(t)
	delete(events.events, "event-1")
	svc := NewCheckInService(testLogger(), regs, events, scans)

	_, err := svc.CheckIn(context.Background(), "tok-1", now)
	assert.ErrorIs(t, err, domain.ErrOrphanedRegistration)
}

func TestCheckInService_NonSuccessOutcomesDoNotMutate(t *testing.T) {
	regs, events, scans, _ := checkInFixture(t)
	svc := NewCheckInService(testLogger(), regs, events, scans)

	early := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	out, err := svc.CheckIn(context.Background(), "tok-1", early)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTooEarly, out.Status)

	stored, err := regs.GetByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.False(t, stored.Attended)
}

func TestCheckInService_ScanAuditFailureIsSwallowed(t *testing.T) {
	regs, events, scans, now := checkInFixture(t)
	scans.err = context.DeadlineExceeded
	svc := NewCheckInService(testLogger(), regs, events, scans)

	out, err := svc.CheckIn(context.Background(), "tok-1", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, out.Status)
}

// K concurrent scans of one token during the valid window must yield exactly
// one success; every loser observes already_attended with the winner's
// timestamp.
func TestCheckInService_ConcurrentScansAtMostOnce(t *testing.T) {
	regs, events, scans, now := checkInFixture(t)
	svc := NewCheckInService(testLogger(), regs, events, scans)

	const k = 32
	outcomes := make([]*domain.VerificationOutcome, k)
	errs := make([]error, k)

	var wg sync.WaitGroup
	wg.Add(k)
	for i := 0; i < k; i++ {
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = svc.CheckIn(context.Background(), "tok-1", now)
		}(i)
	}
	wg.Wait()

	successes, already := 0, 0
	for i := 0; i < k; i++ {
		require.NoError(t, errs[i])
		switch outcomes[i].Status {
		case domain.StatusSuccess:
			successes++
		case domain.StatusAlreadyAttended:
			already++
			require.NotNil(t, outcomes[i].AttendedAt)
			assert.True(t, outcomes[i].AttendedAt.Equal(now))
		default:
			t.Fatalf("unexpected outcome %q", outcomes[i].Status)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, k-1, already)

	stored, err := regs.GetByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.True(t, stored.Attended)
}

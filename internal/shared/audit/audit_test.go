package audit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-hrpay/internal/shared/audit"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

type record struct {
	Name string
	audit.Fields
}

type plain struct {
	Name string
}

func TestApplyCreateStampsBothFromOneInstant(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	r := &record{Name: "first"}

	audit.Apply(r, now, true)

	assert.Equal(t, now, r.Created)
	assert.Equal(t, now, r.Modified)
	assert.Equal(t, r.Created, r.Modified)
}

func TestApplyUpdateLeavesCreatedAlone(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)

	r := &record{}
	audit.Apply(r, created, true)
	audit.Apply(r, later, false)

	assert.Equal(t, created, r.Created)
	assert.Equal(t, later, r.Modified)
	assert.True(t, r.Modified.After(r.Created))
}

func TestApplyIgnoresNonAuditable(t *testing.T) {
	p := &plain{Name: "untouched"}

	audit.Apply(p, time.Now(), true)

	assert.Equal(t, "untouched", p.Name)
}

func TestApplyStampsSliceElements(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	batch := []record{{Name: "a"}, {Name: "b"}}

	audit.Apply(&batch, now, true)

	for _, r := range batch {
		assert.Equal(t, now, r.Created)
		assert.Equal(t, now, r.Modified)
	}
}

func TestApplyStampsSliceOfPointers(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	batch := []*record{{Name: "a"}, {Name: "b"}}

	audit.Apply(&batch, now, false)

	for _, r := range batch {
		assert.Equal(t, now, r.Modified)
		assert.True(t, r.Created.IsZero())
	}
}

func TestApplyNilDestIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		audit.Apply(nil, time.Now(), true)
	})
}

func TestNewStamperDefaultsClock(t *testing.T) {
	s := audit.NewStamper(nil)
	assert.NotNil(t, s.Clock)
	assert.WithinDuration(t, time.Now().UTC(), s.Clock.Now(), time.Minute)
}

func TestStamperUsesInjectedClock(t *testing.T) {
	frozen := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	s := audit.NewStamper(fakeClock{now: frozen})

	assert.Equal(t, frozen, s.Clock.Now())
}

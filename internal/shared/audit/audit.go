// Package audit stamps created/modified times at the persistence
// boundary. Entities opt in by embedding Fields; anything else passes
// through untouched.
package audit

import (
	"reflect"
	"time"

	"gorm.io/gorm"
)

// Clock is the single time source for a write. Tests inject fakes.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fields carries the audit timestamps. Embed it in an entity struct to
// opt in to stamping.
type Fields struct {
	Created  time.Time `gorm:"column:created;not null" json:"created"`
	Modified time.Time `gorm:"column:modified;not null" json:"modified"`
}

// StampCreated sets both timestamps from the same instant.
func (f *Fields) StampCreated(now time.Time) {
	f.Created = now
	f.Modified = now
}

// StampModified advances Modified and leaves Created alone.
func (f *Fields) StampModified(now time.Time) {
	f.Modified = now
}

// Auditable is the capability the interceptor operates over. No field
// names are probed at runtime; an entity either implements this or is
// ignored.
type Auditable interface {
	StampCreated(now time.Time)
	StampModified(now time.Time)
}

// Stamper is a gorm plugin intercepting creates and updates.
type Stamper struct {
	Clock Clock
}

func NewStamper(clock Clock) Stamper {
	if clock == nil {
		clock = SystemClock{}
	}
	return Stamper{Clock: clock}
}

func (Stamper) Name() string { return "audit:stamper" }

func (s Stamper) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("audit:stamp_create", s.beforeCreate); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").
		Register("audit:stamp_update", s.beforeUpdate)
}

func (s Stamper) beforeCreate(db *gorm.DB) {
	Apply(db.Statement.Dest, s.Clock.Now(), true)
}

func (s Stamper) beforeUpdate(db *gorm.DB) {
	Apply(db.Statement.Dest, s.Clock.Now(), false)
}

// Apply stamps dest if it (or its elements, for batch writes) implement
// Auditable. The instant is captured once by the caller so created and
// modified never skew within one write.
func Apply(dest any, now time.Time, creating bool) {
	if dest == nil {
		return
	}

	if stamp(dest, now, creating) {
		return
	}

	// Batch writes arrive as slices of entities or entity pointers.
	rv := reflect.ValueOf(dest)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return
	}
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i)
		if el.Kind() != reflect.Ptr && el.CanAddr() {
			el = el.Addr()
		}
		if el.CanInterface() {
			stamp(el.Interface(), now, creating)
		}
	}
}

func stamp(v any, now time.Time, creating bool) bool {
	a, ok := v.(Auditable)
	if !ok {
		return false
	}
	if creating {
		a.StampCreated(now)
	} else {
		a.StampModified(now)
	}
	return true
}

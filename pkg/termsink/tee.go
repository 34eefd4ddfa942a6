package termsink

import (
	"errors"

	"github.com/sungam3r/termsink/pkg/event"
)

// Tee fans out events to multiple emitters, e.g. a themed console sink
// plus a plain-text file sink. Each Emit delivers the event to every
// wrapped emitter sequentially; one failing emitter does not stop delivery
// to the rest.
type Tee struct {
	emitters []Emitter
}

// NewTee creates a Tee over the given emitters.
func NewTee(emitters ...Emitter) *Tee {
	return &Tee{emitters: emitters}
}

// Emit delivers the event to every wrapped emitter, collecting errors.
func (t *Tee) Emit(e *event.Event) error {
	var errs []error
	for _, em := range t.emitters {
		if err := em.Emit(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every wrapped emitter, collecting errors.
func (t *Tee) Close() error {
	var errs []error
	for _, em := range t.emitters {
		if err := em.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Package sve encodes instructions of the Arm Scalable Vector Extension (SVE)
// and its second generation (SVE2).
//
// Every method of Emitter emits exactly one 32-bit instruction word to the
// underlying asm.Sink. Operands are validated before anything is written; the
// first invalid request is kept as the emitter error and turns every following
// call into a no-op, so a code generator can emit a whole function and check
// Err once at the end.
//
// See https://developer.arm.com/documentation/ddi0602/2022-09/SVE-Instructions
// for the instruction reference.
package sve

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tetratelabs/sveasm/internal/asm"
	"github.com/tetratelabs/sveasm/internal/features"
)

// Emitter encodes SVE instructions into an asm.Sink.
//
// An Emitter is not safe for concurrent use. Emitters writing to distinct sinks
// are independent.
type Emitter struct {
	sink     asm.Sink
	features features.Set
	logger   logrus.FieldLogger
	err      error
}

// NewEmitter returns an Emitter writing to sink. A nil config is equivalent to
// NewEmitterConfig().
func NewEmitter(sink asm.Sink, config *EmitterConfig) *Emitter {
	if config == nil {
		config = NewEmitterConfig()
	}
	return &Emitter{sink: sink, features: config.features, logger: config.logger}
}

// Err returns the first rejected instruction, or nil.
func (e *Emitter) Err() error {
	return e.err
}

// Offset returns the current position of the sink in bytes.
func (e *Emitter) Offset() int {
	return e.sink.Len()
}

// check records the first non-nil error of errs as the emitter error and
// returns true when the instruction may be emitted.
func (e *Emitter) check(inst string, errs ...error) bool {
	if e.err != nil {
		return false
	}
	for _, err := range errs {
		if err != nil {
			e.fail(inst, err)
			return false
		}
	}
	return true
}

func (e *Emitter) fail(inst string, err error) {
	e.err = fmt.Errorf("%s: %w", inst, err)
	if e.logger != nil {
		e.logger.WithError(e.err).WithField("offset", e.sink.Len()).Debug("instruction rejected")
	}
}

func (e *Emitter) emit(inst string, word uint32) {
	if e.err != nil {
		return
	}
	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"inst":   inst,
			"word":   fmt.Sprintf("%#08x", word),
			"offset": e.sink.Len(),
		}).Debug("emit")
	}
	e.sink.WriteUint32(word)
}

// require returns an error unless every extension of f is enabled.
func (e *Emitter) require(f features.Set) error {
	if e.features.Has(f) {
		return nil
	}
	return invalidf("requires extension %s, enabled: %s", f&^e.features, e.features)
}

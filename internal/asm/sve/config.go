package sve

import (
	"github.com/sirupsen/logrus"

	"github.com/tetratelabs/sveasm/internal/features"
)

// EmitterConfig controls the behavior of an Emitter. The zero value is not
// valid; use NewEmitterConfig.
//
// EmitterConfig is immutable: every With method returns a modified copy, so a
// single value can be shared between emitters.
type EmitterConfig struct {
	features features.Set
	logger   logrus.FieldLogger
}

// NewEmitterConfig returns a config enabling every extension and no tracing.
func NewEmitterConfig() *EmitterConfig {
	return &EmitterConfig{features: features.All}
}

func (c *EmitterConfig) clone() *EmitterConfig {
	ret := *c
	return &ret
}

// WithFeatures returns a config allowing instructions from the given extensions.
// Instructions of other extensions fail with an invalid argument error.
func (c *EmitterConfig) WithFeatures(f features.Set) *EmitterConfig {
	ret := c.clone()
	ret.features = f
	return ret
}

// WithLogger returns a config tracing every emitted word, and the first
// rejected instruction, at debug level.
func (c *EmitterConfig) WithLogger(l logrus.FieldLogger) *EmitterConfig {
	ret := c.clone()
	ret.logger = l
	return ret
}

// Features returns the enabled extensions.
func (c *EmitterConfig) Features() features.Set {
	return c.features
}

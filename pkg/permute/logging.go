package permute

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger backs SetLogger/currentLogger. It is only ever read during
// construction of a permutation, never on the encode/decode path.
var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used for construction-time tracing
// (which variant was selected, how many rounds, how large a table). It
// is disabled by default. Encode and Decode never log; they are pure
// functions of their input and the variant's immutable state.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func currentLogger() *zerolog.Logger {
	return logger.Load()
}

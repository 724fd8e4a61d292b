package sequences

import (
	"github.com/rs/zerolog"

	"github.com/seqflow/sequences/internal/logging"
)

// SetLogger installs a logger used by all sequences packages for debug-level
// diagnostics, such as input classification and push-source subscription
// lifecycle events. Logging is disabled by default.
func SetLogger(l zerolog.Logger) {
	logging.SetLogger(l)
}

package log

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or "development"
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type ctxKey struct{}

var requestIDKey = ctxKey{}

package ssap

import (
	"go.uber.org/zap"
)

// Maximum field lengths in bytes defined by the SSAP protocol. Longer values
// are truncated to these lengths.
const (
	MaxMessageTypeLen     = 15
	MaxTransactionTypeLen = 20
	MaxTransactionIDLen   = 10
	MaxNodeIDLen          = 50
	MaxSpaceIDLen         = 50
	MaxStatusLen          = 50
	MaxSubscriptionIDLen  = 100
	MaxSubjectLen         = 500
	MaxPredicateLen       = 500
	MaxObjectLen          = 500
	MaxURILen             = 500
)

// DefaultMaxItems bounds the number of entries of any single result list.
const DefaultMaxItems = 1 << 20

// Limits holds per-field length limits. A zero field uses the protocol
// default, a negative field disables truncation for that field.
type Limits struct {
	MessageType     int `yaml:"message_type"`
	TransactionType int `yaml:"transaction_type"`
	TransactionID   int `yaml:"transaction_id"`
	NodeID          int `yaml:"node_id"`
	SpaceID         int `yaml:"space_id"`
	Status          int `yaml:"status"`
	SubscriptionID  int `yaml:"subscription_id"`
	Subject         int `yaml:"subject"`
	Predicate       int `yaml:"predicate"`
	Object          int `yaml:"object"`
	URI             int `yaml:"uri"`
}

// DefaultLimits returns the protocol limits.
func DefaultLimits() Limits {
	return Limits{
		MessageType:     MaxMessageTypeLen,
		TransactionType: MaxTransactionTypeLen,
		TransactionID:   MaxTransactionIDLen,
		NodeID:          MaxNodeIDLen,
		SpaceID:         MaxSpaceIDLen,
		Status:          MaxStatusLen,
		SubscriptionID:  MaxSubscriptionIDLen,
		Subject:         MaxSubjectLen,
		Predicate:       MaxPredicateLen,
		Object:          MaxObjectLen,
		URI:             MaxURILen,
	}
}

func normalizeLimits(l Limits) Limits {
	def := DefaultLimits()
	fill := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&l.MessageType, def.MessageType)
	fill(&l.TransactionType, def.TransactionType)
	fill(&l.TransactionID, def.TransactionID)
	fill(&l.NodeID, def.NodeID)
	fill(&l.SpaceID, def.SpaceID)
	fill(&l.Status, def.Status)
	fill(&l.SubscriptionID, def.SubscriptionID)
	fill(&l.Subject, def.Subject)
	fill(&l.Predicate, def.Predicate)
	fill(&l.Object, def.Object)
	fill(&l.URI, def.URI)
	return l
}

// Option configures a Decoder.
type Option func(*Options)

// Options configures decoding.
type Options struct {
	Limits Limits

	// RejectOverlong turns truncation into an ErrFieldTooLong failure.
	// Existing senders rely on truncation, so this is off by default.
	RejectOverlong bool

	// MaxItems limits the entries of each result list. Zero uses
	// DefaultMaxItems, a negative value disables the limit.
	MaxItems int

	// MaxDepth limits element nesting when decoding from bytes.
	MaxDepth int

	// AllProperties makes the RDF/XML decoder emit a triple for every
	// property element of a description instead of only the first one.
	AllProperties bool

	Logger *zap.Logger
}

// OptLimits replaces the field length limits.
func OptLimits(limits Limits) Option {
	return func(opts *Options) {
		opts.Limits = limits
	}
}

// OptRejectOverlong fails decoding when a value exceeds its limit instead
// of truncating it.
func OptRejectOverlong() Option {
	return func(opts *Options) {
		opts.RejectOverlong = true
	}
}

// OptMaxItems sets the maximum number of entries per result list.
func OptMaxItems(maxItems int) Option {
	return func(opts *Options) {
		opts.MaxItems = maxItems
	}
}

// OptMaxDepth sets the maximum element nesting depth for Decode.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptAllProperties emits one triple per RDF/XML property element.
func OptAllProperties() Option {
	return func(opts *Options) {
		opts.AllProperties = true
	}
}

// OptLogger sets the logger used to report recoverable conditions.
func OptLogger(logger *zap.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func defaultOptions() Options {
	return Options{
		Limits:   DefaultLimits(),
		MaxItems: DefaultMaxItems,
	}
}

func normalizeOptions(opts Options) Options {
	opts.Limits = normalizeLimits(opts.Limits)
	if opts.MaxItems == 0 {
		opts.MaxItems = DefaultMaxItems
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

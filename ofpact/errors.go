package ofpact

import "fmt"

// Kind identifies one of the closed set of error conditions the codec can
// signal. It never carries payload itself; wrap it in an Error to attach
// context.
type Kind uint8

const (
	// KindBadLen is returned when a wire length field is inconsistent,
	// misaligned, or exceeds the remaining span.
	KindBadLen Kind = iota

	// KindBadType is returned for an unknown or obsolete action or
	// instruction type.
	KindBadType

	// KindBadVendor is returned when a vendor action carries a vendor id
	// other than the Nicira id.
	KindBadVendor

	// KindBadArgument is returned when a reserved bit or byte is
	// non-zero, or a value falls outside its permitted range.
	KindBadArgument

	// KindBadOutPort is returned when an output port is out of range and
	// is not a recognized reserved port.
	KindBadOutPort

	// KindUnknownInst is returned for an OF1.1 instruction kind outside
	// the known enumeration.
	KindUnknownInst

	// KindUnsupInst is returned when an OF1.1 instruction other than
	// APPLY_ACTIONS is present.
	KindUnsupInst

	// KindDupType is returned when two instructions of the same kind
	// appear in one instruction block.
	KindDupType

	// KindBadExperimenter is returned when an EXPERIMENTER instruction
	// is present; this codec never accepts one.
	KindBadExperimenter

	// KindUnsupported is returned by an encoder asked to produce a wire
	// form that the target version has no native encoding for.
	KindUnsupported
)

var kindText = map[Kind]string{
	KindBadLen:          "bad length",
	KindBadType:         "bad type",
	KindBadVendor:       "bad vendor",
	KindBadArgument:     "bad argument",
	KindBadOutPort:      "bad output port",
	KindUnknownInst:     "unknown instruction",
	KindUnsupInst:       "unsupported instruction",
	KindDupType:         "duplicate instruction type",
	KindBadExperimenter: "bad experimenter instruction",
	KindUnsupported:     "unsupported encoding",
}

func (k Kind) String() string {
	text, ok := kindText[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return text
}

// Error is the concrete error type returned by every decode, encode and
// validate entry point in this package. Context is a short, human-readable
// note about where in the stream the failure occurred (action type, byte
// offset, field name); it is not meant to be parsed.
type Error struct {
	Kind    Kind
	Context string
}

func (e *Error) Error() string {
	if e.Context == "" {
		return "ofpact: " + e.Kind.String()
	}
	return fmt.Sprintf("ofpact: %s: %s", e.Kind, e.Context)
}

// Is allows errors.Is(err, ErrBadLen) and friends to match regardless of
// the attached context.
func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	return ok && o.Kind == e.Kind
}

func newErr(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Context: fmt.Sprintf(format, args...)}
}

// Sentinel errors for use with errors.Is. These carry no context and exist
// purely as comparison targets.
var (
	ErrBadLen          = &Error{Kind: KindBadLen}
	ErrBadType         = &Error{Kind: KindBadType}
	ErrBadVendor       = &Error{Kind: KindBadVendor}
	ErrBadArgument     = &Error{Kind: KindBadArgument}
	ErrBadOutPort      = &Error{Kind: KindBadOutPort}
	ErrUnknownInst     = &Error{Kind: KindUnknownInst}
	ErrUnsupInst       = &Error{Kind: KindUnsupInst}
	ErrDupType         = &Error{Kind: KindDupType}
	ErrBadExperimenter = &Error{Kind: KindBadExperimenter}
	ErrUnsupported11   = &Error{Kind: KindUnsupported}
)

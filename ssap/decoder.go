package ssap

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/xmltree"
)

// Decoder turns SSAP element trees into Messages. A Decoder only holds
// immutable options and is safe for concurrent use as long as every call
// receives its own tree.
type Decoder struct {
	opts Options
}

// NewDecoder creates a decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Decoder{opts: normalizeOptions(options)}
}

var defaultDecoder = NewDecoder()

// DecodeMessage decodes a message from its root element with default options.
func DecodeMessage(root *xmltree.Element) (*Message, error) {
	return defaultDecoder.DecodeMessage(root)
}

// Decode reads an XML document and decodes the message it holds with
// default options.
func Decode(r io.Reader) (*Message, error) {
	return defaultDecoder.Decode(r)
}

// DecodeBytes decodes an in-memory message with default options.
func DecodeBytes(data []byte) (*Message, error) {
	return defaultDecoder.Decode(bytes.NewReader(data))
}

// DecodeSelectResult decodes a bare SPARQL XML results element with
// default options. The second result is the number of declared variables.
func DecodeSelectResult(root *xmltree.Element) (*SelectResult, int, error) {
	return defaultDecoder.DecodeSelectResult(root)
}

// DecodeSelectDocument reads a bare SPARQL XML results document with
// default options.
func DecodeSelectDocument(r io.Reader) (*SelectResult, int, error) {
	return defaultDecoder.DecodeSelectDocument(r)
}

// Decode reads an XML document and decodes the message it holds. A document
// that is not well formed yields ErrMalformedDocument and no message.
func (d *Decoder) Decode(r io.Reader) (*Message, error) {
	root, err := d.parse(r)
	if err != nil {
		return nil, err
	}
	return d.DecodeMessage(root)
}

// DecodeSelectDocument reads a bare SPARQL XML results document.
func (d *Decoder) DecodeSelectDocument(r io.Reader) (*SelectResult, int, error) {
	root, err := d.parse(r)
	if err != nil {
		return nil, 0, err
	}
	return d.DecodeSelectResult(root)
}

// DecodeSelectResult decodes a SPARQL XML results element without an
// envelope around it. Recoverable conditions, such as rows dropped at the
// item limit, are listed in the result's Warnings.
func (d *Decoder) DecodeSelectResult(root *xmltree.Element) (*SelectResult, int, error) {
	if root == nil {
		return nil, 0, &DecodeError{Err: ErrMalformedEnvelope}
	}
	s := d.newState()
	result, width := s.decodeSelect(root, root.Name)
	if s.err != nil {
		return nil, 0, s.err
	}
	result.Warnings = s.warnings
	return result, width, nil
}

func (d *Decoder) parse(r io.Reader) (*xmltree.Element, error) {
	root, err := xmltree.Parse(r, xmltree.OptMaxDepth(d.opts.MaxDepth))
	if err != nil {
		d.opts.Logger.Debug("ssap: document rejected by tokenizer", zap.Error(err))
		return nil, &DecodeError{Err: fmt.Errorf("%w: %w", ErrMalformedDocument, err)}
	}
	return root, nil
}

// state carries what one decode call accumulates. It is never shared.
type state struct {
	opts     Options
	log      *zap.Logger
	warnings []error
	// err is the first fatal error raised below the envelope level, such as
	// an overlong payload value while RejectOverlong is set.
	err error
}

func (d *Decoder) newState() *state {
	return &state{opts: d.opts, log: d.opts.Logger}
}

// warn records a recoverable condition.
func (s *state) warn(element string, err error) {
	w := &DecodeError{Element: element, Err: err}
	s.warnings = append(s.warnings, w)
	s.log.Debug("ssap: recoverable decode condition",
		zap.String("element", element),
		zap.String("code", string(Code(err))),
		zap.Error(err))
}

// clip applies a field limit to value.
func (s *state) clip(element, value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	if s.opts.RejectOverlong {
		if s.err == nil {
			s.err = &DecodeError{
				Element: element,
				Err:     fmt.Errorf("%w: %d bytes, limit %d", ErrFieldTooLong, len(value), limit),
			}
		}
		return value[:limit]
	}
	s.log.Debug("ssap: truncating field",
		zap.String("element", element),
		zap.Int("length", len(value)),
		zap.Int("limit", limit))
	return value[:limit]
}

// full reports whether a list of n entries has reached the item limit, and
// records the truncation when it has.
func (s *state) full(element string, n int) bool {
	if s.opts.MaxItems < 0 || n < s.opts.MaxItems {
		return false
	}
	s.warn(element, fmt.Errorf("%w: %d entries", ErrPartialResult, s.opts.MaxItems))
	return true
}

// text returns the element text clipped to limit.
func (s *state) text(el *xmltree.Element, element string, limit int) (string, bool) {
	value, ok := el.Text()
	if !ok {
		return "", false
	}
	return s.clip(element, value, limit), true
}

package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxDepth bounds element nesting for untrusted input.
const DefaultMaxDepth = 256

// Option configures Parse.
type Option func(*Options)

// Options configures Parse.
type Options struct {
	// MaxDepth limits element nesting. Zero uses DefaultMaxDepth, a negative
	// value disables the limit.
	MaxDepth int
}

// OptMaxDepth sets the maximum element nesting depth.
func OptMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

func defaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Parse reads a complete XML document and returns its root element.
//
// Any failure to produce a well-formed tree is reported as a *SyntaxError.
func Parse(r io.Reader, opts ...Option) (*Element, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth == 0 {
		options.MaxDepth = DefaultMaxDepth
	}

	dec := xml.NewDecoder(r)
	dec.Strict = true

	type frame struct {
		el   *Element
		text strings.Builder
	}
	var (
		root  *Element
		stack []*frame
	)

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newSyntaxError(dec, CodeSyntax, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, newSyntaxError(dec, CodeTrailingContent, fmt.Errorf("second root element <%s>", qualifiedName(t.Name)))
			}
			if options.MaxDepth > 0 && len(stack) >= options.MaxDepth {
				return nil, newSyntaxError(dec, CodeDepthExceeded, ErrDepthExceeded)
			}
			el := &Element{Name: qualifiedName(t.Name)}
			if len(t.Attr) > 0 {
				el.Attrs = make([]Attr, 0, len(t.Attr))
				for _, attr := range t.Attr {
					el.Attrs = append(el.Attrs, Attr{Name: qualifiedName(attr.Name), Value: attr.Value})
				}
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1].el
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, &frame{el: el})
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 {
				return nil, newSyntaxError(dec, CodeTagMismatch, fmt.Errorf("unexpected end element </%s>", name))
			}
			top := stack[len(stack)-1]
			if top.el.Name != name {
				return nil, newSyntaxError(dec, CodeTagMismatch, fmt.Errorf("element <%s> closed by </%s>", top.el.Name, name))
			}
			top.el.setText(top.text.String())
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, newSyntaxError(dec, CodeTrailingContent, errors.New("character data outside root element"))
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}

	if len(stack) > 0 {
		return nil, newSyntaxError(dec, CodeUnexpectedEOF, fmt.Errorf("element <%s> not closed", stack[len(stack)-1].el.Name))
	}
	if root == nil {
		return nil, newSyntaxError(dec, CodeNoRoot, errors.New("document has no root element"))
	}
	return root, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(doc string, opts ...Option) (*Element, error) {
	return Parse(strings.NewReader(doc), opts...)
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

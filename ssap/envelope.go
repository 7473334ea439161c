package ssap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/xmltree"
)

// RootTag is the name of the root element of every SSAP message.
const RootTag = "SSAP_message"

// Envelope element names.
const (
	tagMessageType     = "message_type"
	tagTransactionType = "transaction_type"
	tagTransactionID   = "transaction_id"
	tagNodeID          = "node_id"
	tagSpaceID         = "space_id"
	tagParameter       = "parameter"
)

// ParameterKind is the meaning of a <parameter> element, selected by its
// name attribute.
type ParameterKind uint8

const (
	// ParamUnknown is any name this decoder does not handle.
	ParamUnknown ParameterKind = iota
	ParamStatus
	ParamResults
	ParamNewResults
	ParamObsoleteResults
	ParamSubscriptionID
	ParamBlankNodes
)

var parameterKinds = map[string]ParameterKind{
	"status":           ParamStatus,
	"results":          ParamResults,
	"new_results":      ParamNewResults,
	"obsolete_results": ParamObsoleteResults,
	"subscription_id":  ParamSubscriptionID,
	"bnodes":           ParamBlankNodes,
}

// ParseParameterKind maps a parameter name attribute to its kind.
func ParseParameterKind(name string) ParameterKind {
	return parameterKinds[name]
}

// DecodeMessage decodes the message rooted at root.
//
// Fatal conditions (wrong root, empty mandatory field, overlong value with
// RejectOverlong) return an error and no message. Recoverable conditions
// leave the affected field at its zero value and are listed in
// Message.Warnings.
func (d *Decoder) DecodeMessage(root *xmltree.Element) (*Message, error) {
	if root == nil {
		return nil, &DecodeError{Err: ErrMalformedEnvelope}
	}
	if root.Name != RootTag {
		return nil, &DecodeError{
			Element: root.Name,
			Err:     fmt.Errorf("%w: got <%s>", ErrWrongRootTag, root.Name),
		}
	}

	s := d.newState()
	msg := &Message{}
	limits := s.opts.Limits

	for _, child := range root.Children {
		var err error
		switch child.Name {
		case tagMessageType:
			msg.MessageType, err = s.required(child, limits.MessageType)
		case tagTransactionType:
			msg.TransactionType, err = s.required(child, limits.TransactionType)
		case tagTransactionID:
			msg.TransactionID, err = s.required(child, limits.TransactionID)
		case tagNodeID:
			msg.NodeID, err = s.required(child, limits.NodeID)
		case tagSpaceID:
			msg.SpaceID, err = s.required(child, limits.SpaceID)
		case tagParameter:
			s.decodeParameter(child, msg)
		default:
			s.log.Debug("ssap: skipping unknown envelope element", zap.String("element", child.Name))
		}
		if err != nil {
			return nil, err
		}
		if s.err != nil {
			return nil, s.err
		}
	}

	msg.Warnings = s.warnings
	return msg, nil
}

// required reads the text of a mandatory scalar field.
func (s *state) required(el *xmltree.Element, limit int) (string, error) {
	value, ok := s.text(el, el.Name, limit)
	if !ok {
		return "", &DecodeError{Element: el.Name, Err: ErrMissingRequiredField}
	}
	return value, nil
}

func (s *state) decodeParameter(el *xmltree.Element, msg *Message) {
	name, ok := el.Attr("name")
	if !ok {
		s.warn(tagParameter, fmt.Errorf("%w: missing name attribute", ErrMalformedParameter))
		return
	}
	element := tagParameter + "[" + name + "]"
	limits := s.opts.Limits

	switch ParseParameterKind(name) {
	case ParamStatus:
		if value, ok := s.text(el, element, limits.Status); ok {
			msg.Status = value
		}
	case ParamResults, ParamNewResults:
		msg.Current = s.decodePayload(el, element, msg)
	case ParamObsoleteResults:
		msg.Obsolete = s.decodePayload(el, element, msg)
	case ParamSubscriptionID:
		if value, ok := s.text(el, element, limits.SubscriptionID); ok {
			msg.SubscriptionID = value
		}
	case ParamBlankNodes:
		list := el.Child(tagURIList)
		if list == nil {
			s.warn(element, fmt.Errorf("%w: no <%s> element", ErrMalformedParameter, tagURIList))
			return
		}
		msg.BlankNodes = s.decodeBlankNodes(list, element+"/"+tagURIList)
	default:
		s.log.Debug("ssap: skipping unknown parameter", zap.String("parameter", name))
	}
}

package output

import (
	"github.com/geoknoesis/ssap-go/ssap"
)

// MessageView is the serializable form of a decoded message.
type MessageView struct {
	MessageType     string           `json:"message_type" yaml:"message_type"`
	TransactionType string           `json:"transaction_type" yaml:"transaction_type"`
	TransactionID   string           `json:"transaction_id" yaml:"transaction_id"`
	NodeID          string           `json:"node_id" yaml:"node_id"`
	SpaceID         string           `json:"space_id" yaml:"space_id"`
	Status          string           `json:"status,omitempty" yaml:"status,omitempty"`
	SubscriptionID  string           `json:"subscription_id,omitempty" yaml:"subscription_id,omitempty"`
	Current         *PayloadView     `json:"current,omitempty" yaml:"current,omitempty"`
	Obsolete        *PayloadView     `json:"obsolete,omitempty" yaml:"obsolete,omitempty"`
	BlankNodes      []ssap.BlankNode `json:"bnodes,omitempty" yaml:"bnodes,omitempty"`
	BindingCount    int              `json:"binding_count,omitempty" yaml:"binding_count,omitempty"`
	Warnings        []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// PayloadView is the serializable form of one result slot. Only the fields
// of the payload's shape are set.
type PayloadView struct {
	Shape     string        `json:"shape" yaml:"shape"`
	Namespace string        `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Triples   []ssap.Triple `json:"triples,omitempty" yaml:"triples,omitempty"`
	Answer    *bool         `json:"answer,omitempty" yaml:"answer,omitempty"`
	Variables []string      `json:"variables,omitempty" yaml:"variables,omitempty"`
	Rows      []ssap.Row    `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// NewMessageView converts msg for display.
func NewMessageView(msg *ssap.Message) *MessageView {
	v := &MessageView{
		MessageType:     msg.MessageType,
		TransactionType: msg.TransactionType,
		TransactionID:   msg.TransactionID,
		NodeID:          msg.NodeID,
		SpaceID:         msg.SpaceID,
		Status:          msg.Status,
		SubscriptionID:  msg.SubscriptionID,
		Current:         NewPayloadView(msg.Current),
		Obsolete:        NewPayloadView(msg.Obsolete),
		BlankNodes:      msg.BlankNodes,
		BindingCount:    msg.BindingCount,
	}
	for _, w := range msg.Warnings {
		v.Warnings = append(v.Warnings, w.Error())
	}
	return v
}

// NewPayloadView converts a payload for display. It returns nil for an
// empty slot.
func NewPayloadView(p ssap.Payload) *PayloadView {
	if p == nil {
		return nil
	}
	v := &PayloadView{Shape: p.Shape().String()}
	switch p := p.(type) {
	case ssap.TripleList:
		v.Triples = p
	case ssap.Graph:
		v.Namespace = p.Namespace
		v.Triples = p.Triples
	case ssap.AskResult:
		answer := p.Bool()
		v.Answer = &answer
	case *ssap.SelectResult:
		if p == nil {
			return nil
		}
		v.Variables = p.Variables
		v.Rows = p.Rows
	}
	return v
}

func view(data any) any {
	switch d := data.(type) {
	case *ssap.Message:
		return NewMessageView(d)
	case ssap.Payload:
		return NewPayloadView(d)
	}
	return data
}

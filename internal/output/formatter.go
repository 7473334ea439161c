package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/ssap-go/rdf"
	"github.com/geoknoesis/ssap-go/ssap"
)

// Formatter defines the interface for output formatting. Format accepts a
// *ssap.Message, an ssap.Payload or one of the view types.
type Formatter interface {
	Format(data any) string
}

// NewFormatter returns a Formatter for the given format string.
// Supported formats: "table" (default), "json", "yaml", "ntriples", "jsonld".
func NewFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &JSONFormatter{}
	case "yaml":
		return &YAMLFormatter{}
	case "ntriples":
		return &NTriplesFormatter{}
	case "jsonld":
		return &JSONLDFormatter{}
	default:
		return &TableFormatter{}
	}
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// TableFormatter formats messages as aligned text tables.
type TableFormatter struct{}

func (f *TableFormatter) Format(data any) string {
	var buf bytes.Buffer
	switch v := view(data).(type) {
	case *MessageView:
		writeMessage(&buf, v)
	case *PayloadView:
		if v == nil {
			buf.WriteString("No result.\n")
			break
		}
		writePayload(&buf, v)
	case nil:
		buf.WriteString("No result.\n")
	default:
		fmt.Fprintln(&buf, data)
	}
	return buf.String()
}

func writeMessage(buf *bytes.Buffer, v *MessageView) {
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fields := []struct{ name, value string }{
		{"MESSAGE TYPE", v.MessageType},
		{"TRANSACTION", v.TransactionType},
		{"TRANSACTION ID", v.TransactionID},
		{"NODE", v.NodeID},
		{"SPACE", v.SpaceID},
		{"STATUS", v.Status},
		{"SUBSCRIPTION", v.SubscriptionID},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		fmt.Fprintf(w, "%s:\t%s\n", field.name, field.value)
	}
	w.Flush()

	if v.Current != nil {
		buf.WriteString("\n" + sectionStyle.Render("RESULTS") + "\n")
		writePayload(buf, v.Current)
	}
	if v.Obsolete != nil {
		buf.WriteString("\n" + sectionStyle.Render("OBSOLETE RESULTS") + "\n")
		writePayload(buf, v.Obsolete)
	}
	if len(v.BlankNodes) > 0 {
		buf.WriteString("\n" + sectionStyle.Render("BLANK NODES") + "\n")
		rows := make([][]string, 0, len(v.BlankNodes))
		for _, b := range v.BlankNodes {
			rows = append(rows, []string{b.Label, b.URI})
		}
		writeTable(buf, []string{"LABEL", "URI"}, rows)
	}
	for _, warning := range v.Warnings {
		buf.WriteString(warningStyle.Render("warning: "+warning) + "\n")
	}
}

func writePayload(buf *bytes.Buffer, v *PayloadView) {
	switch {
	case v.Answer != nil:
		writeTable(buf, []string{"ANSWER"}, [][]string{{strconv.FormatBool(*v.Answer)}})
	case v.Shape == ssap.ShapeSelect.String():
		if len(v.Rows) == 0 {
			buf.WriteString("No rows.\n")
			return
		}
		headers := make([]string, len(v.Variables))
		for i, name := range v.Variables {
			headers[i] = strings.ToUpper(name)
		}
		rows := make([][]string, 0, len(v.Rows))
		for _, row := range v.Rows {
			cells := make([]string, len(row))
			for i, b := range row {
				cells[i] = b.Value
			}
			rows = append(rows, cells)
		}
		writeTable(buf, headers, rows)
	default:
		if len(v.Triples) == 0 {
			buf.WriteString("No triples.\n")
			return
		}
		rows := make([][]string, 0, len(v.Triples))
		for _, t := range v.Triples {
			rows = append(rows, []string{t.Subject, t.Predicate, t.Object, t.ObjectKind.String()})
		}
		writeTable(buf, []string{"SUBJECT", "PREDICATE", "OBJECT", "KIND"}, rows)
	}
}

// writeTable aligns the cells with tabwriter and styles the header line
// afterwards so escape sequences do not skew the column widths.
func writeTable(buf *bytes.Buffer, headers []string, rows [][]string) {
	var table bytes.Buffer
	w := tabwriter.NewWriter(&table, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	header, rest, _ := strings.Cut(table.String(), "\n")
	buf.WriteString(headerStyle.Render(header) + "\n")
	buf.WriteString(rest)
}

// JSONFormatter formats data as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(data any) string {
	b, err := json.MarshalIndent(view(data), "", "  ")
	if err != nil {
		return fmt.Sprintf("error formatting JSON: %v\n", err)
	}
	return string(b) + "\n"
}

// YAMLFormatter formats data as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(data any) string {
	b, err := yaml.Marshal(view(data))
	if err != nil {
		return fmt.Sprintf("error formatting YAML: %v\n", err)
	}
	return string(b)
}

// Renderer is implemented by formatters whose conversion can fail.
type Renderer interface {
	Render(data any) (string, error)
}

// Render formats data with f, returning the conversion error of a Renderer
// instead of embedding it in the output.
func Render(f Formatter, data any) (string, error) {
	if r, ok := f.(Renderer); ok {
		return r.Render(data)
	}
	return f.Format(data), nil
}

// NTriplesFormatter writes the complete triples of the current result as
// N-Triples. Other payloads produce no output.
type NTriplesFormatter struct{}

func (f *NTriplesFormatter) Format(data any) string {
	out, err := f.Render(data)
	if err != nil {
		return fmt.Sprintf("error formatting N-Triples: %v\n", err)
	}
	return out
}

// Render returns the N-Triples document or the first statement that
// cannot be written, such as one with a relative IRI.
func (f *NTriplesFormatter) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := rdf.WriteNTriples(&buf, statements(data)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// JSONLDFormatter converts the complete triples of the current result to
// JSON-LD, compacted with Context when it is set.
type JSONLDFormatter struct {
	Context map[string]interface{}
}

func (f *JSONLDFormatter) Format(data any) string {
	out, err := f.Render(data)
	if err != nil {
		return fmt.Sprintf("error formatting JSON-LD: %v\n", err)
	}
	return out
}

// Render returns the JSON-LD document or the conversion error.
func (f *JSONLDFormatter) Render(data any) (string, error) {
	doc, err := rdf.ToJSONLD(context.Background(), statements(data), rdf.JSONLDOptions{Context: f.Context})
	if err != nil {
		return "", fmt.Errorf("jsonld: %w", err)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("jsonld: %w", err)
	}
	return string(b) + "\n", nil
}

func statements(data any) []rdf.Triple {
	switch d := data.(type) {
	case *ssap.Message:
		return ssap.Statements(d.Current)
	case ssap.Payload:
		return ssap.Statements(d)
	}
	return nil
}

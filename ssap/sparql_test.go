package ssap

import (
	"errors"
	"strings"
	"testing"
)

func sparqlParam(body string) string {
	return `<parameter name="results"><sparql xmlns="http://www.w3.org/2005/sparql-results#">` + body + `</sparql></parameter>`
}

func TestDecodeAsk(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"TRUE", false},
		{"yes", false},
	}
	for _, tc := range cases {
		msg := decodeString(t, envelope(sparqlParam(`<head/><boolean>`+tc.text+`</boolean>`)))
		ask, ok := msg.Current.(AskResult)
		if !ok {
			t.Fatalf("%q: expected AskResult, got %T", tc.text, msg.Current)
		}
		if ask.Bool() != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.text, tc.want, ask.Bool())
		}
		wantCode := 1
		if tc.want {
			wantCode = 0
		}
		if ask.Code() != wantCode {
			t.Errorf("%q: expected code %d, got %d", tc.text, wantCode, ask.Code())
		}
	}
}

const selectBody = `<head><variable name="s"/><variable name="o"/></head>` +
	`<results>` +
	`<result><binding name="s"><uri>http://example.org/a</uri></binding><binding name="o"><literal xml:lang="en">hello</literal></binding></result>` +
	`<result><binding name="s"><bnode>b0</bnode></binding><binding name="o"><literal datatype="http://www.w3.org/2001/XMLSchema#integer">42</literal></binding></result>` +
	`<result><binding name="s"><uri>http://example.org/c</uri></binding><binding name="o"><unbound/></binding></result>` +
	`</results>`

func TestDecodeSelect(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(selectBody)))
	result, ok := msg.Current.(*SelectResult)
	if !ok {
		t.Fatalf("expected *SelectResult, got %T", msg.Current)
	}
	if msg.BindingCount != 2 || result.Width() != 2 {
		t.Fatalf("expected 2 variables, got %d/%d", msg.BindingCount, result.Width())
	}
	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(result.Rows))
	}
	for i, row := range result.Rows {
		if len(row) != 2 {
			t.Fatalf("row %d: expected 2 bindings, got %d", i, len(row))
		}
	}

	want := [][]Binding{
		{
			{Name: "s", Value: "http://example.org/a", Kind: KindURI},
			{Name: "o", Value: "hello", Kind: KindLiteral, Lang: "en"},
		},
		{
			{Name: "s", Value: "b0", Kind: KindBlankNode},
			{Name: "o", Value: "42", Kind: KindLiteral, Datatype: "http://www.w3.org/2001/XMLSchema#integer"},
		},
		{
			{Name: "s", Value: "http://example.org/c", Kind: KindURI},
			{Name: "o", Kind: KindUnbound},
		},
	}
	for i := range want {
		for j := range want[i] {
			if result.Rows[i][j] != want[i][j] {
				t.Errorf("row %d binding %d: expected %+v, got %+v", i, j, want[i][j], result.Rows[i][j])
			}
		}
	}

	if got := result.Column("o"); len(got) != 3 || got[0] != "hello" || got[2] != "" {
		t.Fatalf("unexpected column %v", got)
	}
	if b, ok := result.Rows[1].Get("s"); !ok || b.Value != "b0" {
		t.Fatalf("unexpected Get result %+v", b)
	}
	if _, ok := result.Rows[1].Get("missing"); ok {
		t.Fatal("expected missing variable not to be found")
	}
}

func TestDecodeSelectUnboundIgnoresText(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(
		`<head><variable name="x"/></head><results><result><binding name="x"><unbound>junk</unbound></binding></result></results>`)))
	b := msg.Current.(*SelectResult).Rows[0][0]
	if b.Kind != KindUnbound || b.Value != "" || b.Name != "x" {
		t.Fatalf("expected empty unbound binding, got %+v", b)
	}
}

func TestDecodeSelectUnknownValueTag(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(
		`<head><variable name="x"/></head><results><result><binding name="x"><triple>t</triple></binding></result></results>`)))
	b := msg.Current.(*SelectResult).Rows[0][0]
	if b.Kind != KindUnknown || b.Value != "t" {
		t.Fatalf("expected unknown kind with text, got %+v", b)
	}
}

func TestDecodeSelectShortRow(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(
		`<head><variable name="a"/><link href="x"/><variable name="b"/></head>`+
			`<results><result><binding name="a"><literal>1</literal></binding></result></results>`)))
	result := msg.Current.(*SelectResult)
	if result.Width() != 2 {
		t.Fatalf("expected only variable elements to count, got %d", result.Width())
	}
	row := result.Rows[0]
	if len(row) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(row))
	}
	if row[1] != (Binding{Name: "b", Kind: KindUnbound}) {
		t.Fatalf("expected missing binding to be unbound, got %+v", row[1])
	}
}

func TestDecodeSelectWithoutResults(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(`<head><variable name="a"/><variable name="b"/><variable name="c"/></head>`)))
	result, ok := msg.Current.(*SelectResult)
	if !ok {
		t.Fatalf("expected *SelectResult, got %T", msg.Current)
	}
	if len(result.Rows) != 0 || strings.Join(result.Variables, ",") != "a,b,c" {
		t.Fatalf("expected the declared variables and no rows, got %+v", result)
	}
	if msg.BindingCount != 3 {
		t.Fatalf("expected binding count 3, got %d", msg.BindingCount)
	}
}

func TestDecodeSelectEmptyResults(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(`<head><variable name="a"/></head><results/>`)))
	result, ok := msg.Current.(*SelectResult)
	if !ok {
		t.Fatalf("expected *SelectResult, got %T", msg.Current)
	}
	if len(result.Rows) != 0 || result.Width() != 1 {
		t.Fatalf("expected no rows and one variable, got %+v", result)
	}
}

func TestDecodeSelectRowLimit(t *testing.T) {
	msg := decodeString(t, envelope(sparqlParam(selectBody)), OptMaxItems(2))
	result := msg.Current.(*SelectResult)
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Rows))
	}
	if len(msg.Warnings) != 1 || Code(msg.Warnings[0]) != ErrCodePartialResult {
		t.Fatalf("expected partial result warning, got %v", msg.Warnings)
	}
	if result.Warnings != nil {
		t.Fatalf("expected envelope warnings on the message only, got %v", result.Warnings)
	}

	result, width, err := NewDecoder(OptMaxItems(2)).DecodeSelectDocument(strings.NewReader(`<sparql>` + selectBody + `</sparql>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if width != 2 || len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows of width 2, got %d rows width %d", len(result.Rows), width)
	}
	if len(result.Warnings) != 1 || !errors.Is(result.Warnings[0], ErrPartialResult) {
		t.Fatalf("expected partial result warning on the result, got %v", result.Warnings)
	}

	result, _, err = DecodeSelectDocument(strings.NewReader(`<sparql>` + selectBody + `</sparql>`))
	if err != nil || len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings without a limit, got %v %v", result.Warnings, err)
	}
}

func TestDecodeSelectDocument(t *testing.T) {
	result, width, err := DecodeSelectDocument(strings.NewReader(`<sparql>` + selectBody + `</sparql>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if width != 2 || len(result.Rows) != 3 {
		t.Fatalf("unexpected result width=%d rows=%d", width, len(result.Rows))
	}
	if result.Rows[0][0].Value != "http://example.org/a" {
		t.Fatalf("unexpected first value %q", result.Rows[0][0].Value)
	}

	result, width, err = DecodeSelectDocument(strings.NewReader(`<sparql><head><variable name="a"/></head></sparql>`))
	if err != nil || width != 1 {
		t.Fatalf("expected width 1, got %d %v", width, err)
	}
	if len(result.Rows) != 0 || len(result.Variables) != 1 || result.Variables[0] != "a" {
		t.Fatalf("expected header without rows, got %+v", result)
	}

	if _, _, err := DecodeSelectDocument(strings.NewReader(`<sparql><head>`)); !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
	if _, _, err := DecodeSelectResult(nil); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("expected ErrMalformedEnvelope, got %v", err)
	}
}

func TestDecodeSelectRejectOverlong(t *testing.T) {
	long := strings.Repeat("v", MaxSubjectLen+1)
	doc := `<sparql><head><variable name="x"/></head><results><result><binding name="x"><literal>` + long + `</literal></binding></result></results></sparql>`

	result, _, err := DecodeSelectDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Rows[0][0].Value; len(got) != MaxSubjectLen {
		t.Fatalf("expected value truncated to %d bytes, got %d", MaxSubjectLen, len(got))
	}

	_, _, err = NewDecoder(OptRejectOverlong()).DecodeSelectDocument(strings.NewReader(doc))
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("expected ErrFieldTooLong, got %v", err)
	}
}

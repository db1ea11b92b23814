package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"simple", "a,b\n1,2", [][]string{{"a", "b"}, {"1", "2"}}},
		{"trailing newline dropped", "a,b\n1,2\n", [][]string{{"a", "b"}, {"1", "2"}}},
		{"crlf and cr", "a,b\r\n1,2\r3,4\r\n", [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}},
		{"blank lines dropped", "a\n\n   \nb\n", [][]string{{"a"}, {"b"}}},
		{"empty fields kept", "a,,c\n,\n", [][]string{{"a", "", "c"}, {"", ""}}},
		{"quoted separators", "\"x, y\",\"line1\nline2\"\n", [][]string{{"x, y", "line1\nline2"}}},
		{"escaped quote", "\"say \"\"hi\"\"\",z", [][]string{{"say \"hi\"", "z"}}},
		{"quote toggles mid field", "ab\"c,d\"e,f", [][]string{{"abc,de", "f"}}},
		{"unterminated quote swallows rest", "a,\"b\nc,d", [][]string{{"a", "b\nc,d"}}},
		{"trailing whitespace row flushed", "a\n  ", [][]string{{"a"}, {"  "}}},
		{"bom kept", "\ufeffTools,Frequency", [][]string{{"\ufeffTools", "Frequency"}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParse_QuotedRoundTrip(t *testing.T) {
	values := []string{
		`Cursor, "Pro", and more`,
		"first line\r\nsecond, line",
		`""`,
		"plain",
	}
	for _, v := range values {
		text := `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		assert.Equal(t, [][]string{{v}}, Parse(text), "value %q", v)
	}
}

func TestParse_PreservesUTF8(t *testing.T) {
	rows := Parse("outil,fréquence\n“Cursor”,quotidien — souvent")
	assert.Equal(t, [][]string{{"outil", "fréquence"}, {"“Cursor”", "quotidien — souvent"}}, rows)
}

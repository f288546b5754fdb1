package op_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dave-wwg/load-secrets-action/op"
)

func TestParseItemFields(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []op.Field
	}{
		{
			name: "typical listing",
			output: `ID:          abcdef
Title:       ci-secrets
Vault:       ci
Fields:
  SECRET_1:    some secret
  SECRET_2:    abc123
  notesPlain:  free text notes
`,
			want: []op.Field{
				{Name: "SECRET_1", Value: "some secret"},
				{Name: "SECRET_2", Value: "abc123"},
				{Name: "notesPlain", Value: "free text notes"},
			},
		},
		{
			name: "blank lines inside the section are tolerated",
			output: "Fields:\n" +
				"  A:  1\n" +
				"\n" +
				"  B:  2\n",
			want: []op.Field{
				{Name: "A", Value: "1"},
				{Name: "B", Value: "2"},
			},
		},
		{
			name: "non-indented line terminates the section",
			output: "Fields:\n" +
				"  A:  1\n" +
				"History:\n" +
				"  B:  2\n",
			want: []op.Field{{Name: "A", Value: "1"}},
		},
		{
			name:   "no Fields header",
			output: "ID:  abcdef\nTitle:  ci-secrets\n",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name: "empty value",
			output: "Fields:\n" +
				"  EMPTY:\n",
			want: []op.Field{{Name: "EMPTY", Value: ""}},
		},
		{
			name: "indented line without a colon is skipped",
			output: "Fields:\n" +
				"  just some text\n" +
				"  A:  1\n",
			want: []op.Field{{Name: "A", Value: "1"}},
		},
		{
			name: "crlf line endings",
			output: "Fields:\r\n" +
				"  A:  1\r\n" +
				"  B:  2\r\n",
			want: []op.Field{
				{Name: "A", Value: "1"},
				{Name: "B", Value: "2"},
			},
		},
		{
			name: "value containing a colon",
			output: "Fields:\n" +
				"  URL:  https://example.com\n",
			want: []op.Field{{Name: "URL", Value: "https://example.com"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := op.ParseItemFields(test.output)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseItemFields() diff (-want +got):\n%s", diff)
			}
		})
	}
}

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/pkgprobe/pkg/pkgcheck"
)

func TestDefault(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)

	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
	}

	assert.Equal(t, []string{
		"NumPy", "Pandas", "Matplotlib", "Scikit-learn", "SciPy", "NLTK", "Statsmodels",
		"Gensim", "PyKalman", "Pyclust", "Treelib", "Inspyred", "Unidecode",
	}, labels)

	assert.Equal(t, []string{"matplotlib.pyplot"}, entries[2].Imports)
	assert.Equal(t, "sklearn", entries[3].Module)
	assert.Equal(t, "unidecode", entries[12].Symbol)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{
			name:  "valid list",
			input: "- label: alpha\n  module: alpha\n- label: beta\n  module: beta\n",
			want:  2,
		},
		{
			name:  "empty document",
			input: "",
			want:  0,
		},
		{
			name:    "missing label",
			input:   "- module: alpha\n",
			wantErr: "missing label",
		},
		{
			name:    "missing module",
			input:   "- label: Alpha\n",
			wantErr: "missing module",
		},
		{
			name:    "duplicate label",
			input:   "- label: a\n  module: a\n- label: a\n  module: b\n",
			wantErr: "duplicate label",
		},
		{
			name:    "unknown field",
			input:   "- label: a\n  module: a\n  version: 1.0\n",
			wantErr: "failed to parse manifest",
		},
		{
			name:    "not a list",
			input:   "label: a\n",
			wantErr: "failed to parse manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestEntryCheck(t *testing.T) {
	runner := &pkgcheck.MockRunner{}
	e := Entry{Label: "Matplotlib", Module: "matplotlib", Imports: []string{"matplotlib.pyplot"}}

	c := e.Check(runner)

	assert.Equal(t, "Matplotlib", c.Label)
	assert.Equal(t, "matplotlib", c.Module)
	assert.Equal(t, []string{"matplotlib.pyplot"}, c.Imports)
	assert.Empty(t, c.Symbol)
	assert.Same(t, runner, c.Runner)
}

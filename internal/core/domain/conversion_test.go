package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.panid.dev/panid/internal/core/domain"
)

func TestParseDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want domain.Directive
	}{
		{
			name: "preserve",
			raw:  "ensg:ensg+ensgv:ensg_version",
			want: domain.Directive{
				SourceColumn: "ensg",
				SourceType:   domain.ENSG,
				DestColumn:   "ensgv",
				DestType:     domain.ENSGVersion,
				Mode:         domain.ModePreserve,
			},
		},
		{
			name: "replace with spaces in column name",
			raw:  "banana:ensg_version>papayalama wow!:ensg",
			want: domain.Directive{
				SourceColumn: "banana",
				SourceType:   domain.ENSGVersion,
				DestColumn:   "papayalama wow!",
				DestType:     domain.ENSG,
				Mode:         domain.ModeReplace,
			},
		},
		{
			name: "refseq target",
			raw:  "ensembl:ensg+refseq_id:refseq_rna_id",
			want: domain.Directive{
				SourceColumn: "ensembl",
				SourceType:   domain.ENSG,
				DestColumn:   "refseq_id",
				DestType:     domain.RefSeqRNAID,
				Mode:         domain.ModePreserve,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseDirective(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirective_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		contains string
	}{
		{"no symbol", "ensg:ensg", domain.ErrInvalidConversion.Error()},
		{"two symbols", "a:ensg+b:enst>c:ensg", domain.ErrInvalidConversion.Error()},
		{"two identical symbols", "a:ensg+b:enst+c:ensg", domain.ErrInvalidConversion.Error()},
		{"unknown source type", "a:banana+b:ensg", domain.ErrUnknownIDType.Error()},
		{"unknown dest type", "a:ensg+b:banana", domain.ErrUnknownIDType.Error()},
		{"empty source column", ":ensg+b:enst", domain.ErrInvalidConversion.Error()},
		{"empty dest column", "a:ensg+:enst", domain.ErrInvalidConversion.Error()},
		{"missing type separator", "aensg+b:enst", domain.ErrInvalidConversion.Error()},
		{"empty string", "", domain.ErrInvalidConversion.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := domain.ParseDirective(tt.raw)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestParseDirectives(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()
		got, err := domain.ParseDirectives([]string{
			"ensembl_gene_id:ensg_version>ensembl:ensg",
			"ensembl:ensg+refseq_id:refseq_rna_id",
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "ensembl_gene_id", got[0].SourceColumn)
		assert.Equal(t, "ensembl", got[1].SourceColumn)
	})

	t.Run("fails fast on first invalid string", func(t *testing.T) {
		t.Parallel()
		_, err := domain.ParseDirectives([]string{"a:ensg+b:enst", "broken"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidConversion.Error())
	})

	t.Run("rejects empty list", func(t *testing.T) {
		t.Parallel()
		_, err := domain.ParseDirectives(nil)
		require.ErrorIs(t, err, domain.ErrNoConversions)
	})
}

package biomart

import (
	"strings"

	"go.panid.dev/panid/internal/core/domain"
)

// attrSpec describes how an identifier type is materialized from a
// BioMart result row.
type attrSpec struct {
	// attributes queried from the mart, in priority order: the first
	// non-empty cell wins. RefSeq fuses mRNA and ncRNA accessions this
	// way since the two columns never conflict.
	attributes []string

	// stripVersion removes the trailing ".N" version suffix from the
	// value. The unversioned Ensembl types derive from their versioned
	// attribute because the mart has no unversioned one.
	stripVersion bool
}

var attrSpecs = map[domain.IDType]attrSpec{
	domain.ENSGVersion: {attributes: []string{"ensembl_gene_id_version"}},
	domain.ENSG:        {attributes: []string{"ensembl_gene_id_version"}, stripVersion: true},
	domain.ENSTVersion: {attributes: []string{"ensembl_transcript_id_version"}},
	domain.ENST:        {attributes: []string{"ensembl_transcript_id_version"}, stripVersion: true},
	domain.NCBIGeneID:  {attributes: []string{"entrezgene_id"}},
	domain.RefSeqRNAID: {attributes: []string{"refseq_mrna", "refseq_ncrna"}},
	domain.HGNCID:      {attributes: []string{"hgnc_id"}},
	domain.HGNCSymbol:  {attributes: []string{"hgnc_symbol"}},
}

// headerToAttribute maps standardized response headers back to the
// attribute names used in the query. The mart answers with display names
// ("Gene stable ID version"), not attribute names.
var headerToAttribute = map[string]string{
	"gene_stable_id_version":             "ensembl_gene_id_version",
	"transcript_stable_id_version":       "ensembl_transcript_id_version",
	"ncbi_gene_(formerly_entrezgene)_id": "entrezgene_id",
	"refseq_mrna_id":                     "refseq_mrna",
	"refseq_ncrna_id":                    "refseq_ncrna",
}

// unionAttributes returns the attributes needed to project both types,
// deduplicated, in declaration order.
func unionAttributes(a, b domain.IDType) []string {
	seen := make(map[string]struct{})
	var attrs []string
	for _, t := range []domain.IDType{a, b} {
		for _, attr := range attrSpecs[t].attributes {
			if _, ok := seen[attr]; ok {
				continue
			}
			seen[attr] = struct{}{}
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// standardizeHeader normalizes a response header the way the rest of the
// pipeline expects column names: lowercased, trimmed, spaces replaced
// with underscores.
func standardizeHeader(h string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(h)), " ", "_")
}

// dropVersion strips the trailing ".N" version segment from an Ensembl
// ID. Values without a dot are returned unchanged.
func dropVersion(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[:i]
	}
	return id
}

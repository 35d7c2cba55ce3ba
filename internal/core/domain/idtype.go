// Package domain contains the core types for identifier conversion.
package domain

import "go.trai.ch/zerr"

// IDType is a gene or transcript naming scheme known to the registry.
// The string value of a type doubles as its canonical column name in
// mapping tables.
type IDType string

const (
	// ENSGVersion is a versioned Ensembl gene ID (ENSG00000001084.13).
	ENSGVersion IDType = "ensg_version"
	// ENSG is an unversioned Ensembl gene ID (ENSG00000001084).
	ENSG IDType = "ensg"
	// ENSTVersion is a versioned Ensembl transcript ID.
	ENSTVersion IDType = "enst_version"
	// ENST is an unversioned Ensembl transcript ID.
	ENST IDType = "enst"
	// NCBIGeneID is an NCBI (formerly Entrez) gene ID.
	NCBIGeneID IDType = "ncbi_gene_id"
	// RefSeqRNAID is a RefSeq mRNA or ncRNA ID (NM_/NR_ accessions).
	RefSeqRNAID IDType = "refseq_rna_id"
	// HGNCID is an HGNC gene ID (HGNC:4311).
	HGNCID IDType = "hgnc_id"
	// HGNCSymbol is an HGNC gene symbol (GCLC).
	HGNCSymbol IDType = "hgnc_symbol"
)

var idTypes = []IDType{
	ENSGVersion,
	ENSG,
	ENSTVersion,
	ENST,
	NCBIGeneID,
	RefSeqRNAID,
	HGNCID,
	HGNCSymbol,
}

// Types returns the identifier type registry in declaration order.
func Types() []IDType {
	out := make([]IDType, len(idTypes))
	copy(out, idTypes)
	return out
}

// ParseIDType validates a raw type tag against the registry.
func ParseIDType(raw string) (IDType, error) {
	for _, t := range idTypes {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", zerr.With(ErrUnknownIDType, "type", raw)
}

// Column returns the canonical column name for this type.
func (t IDType) Column() string {
	return string(t)
}

// PairKey returns the canonical cache key for an unordered type pair.
// Both orientations of the same pair yield the same key.
func PairKey(a, b IDType) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + "+" + string(b)
}

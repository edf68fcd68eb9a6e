// Package vep models the Variant Effect Predictor endpoint of the
// Ensembl REST API.
package vep

import (
	"ensbatch/internal/ensembl"
	"ensbatch/internal/getter"
)

// Analysis is one VEP result for a single HGVS variant notation.
type Analysis struct {
	Input                  string                  `json:"input"`
	Strand                 ensembl.Strand          `json:"strand"`
	AssemblyName           string                  `json:"assembly_name"`
	SeqRegionName          string                  `json:"seq_region_name"`
	MostSevereConsequence  ensembl.Consequence     `json:"most_severe_consequence"`
	Start                  uint32                  `json:"start"`
	End                    uint32                  `json:"end"`
	AlleleString           string                  `json:"allele_string"`
	TranscriptConsequences []TranscriptConsequence `json:"transcript_consequences"`
}

// TranscriptConsequence is the per-transcript portion of a VEP result.
// The protein-level notations are only present when the variant lands
// in a coding transcript.
type TranscriptConsequence struct {
	TranscriptID     string                `json:"transcript_id"`
	Impact           string                `json:"impact"`
	GeneID           string                `json:"gene_id"`
	GeneSymbol       string                `json:"gene_symbol"`
	Biotype          ensembl.Biotype       `json:"biotype"`
	ConsequenceTerms []ensembl.Consequence `json:"consequence_terms"`
	Canonical        ensembl.Canonical     `json:"canonical"`
	NMD              string                `json:"nmd,omitempty"`

	HGVSp        string `json:"hgvsp,omitempty"`
	HGVSc        string `json:"hgvsc,omitempty"`
	ProteinStart uint32 `json:"protein_start,omitempty"`
	ProteinEnd   uint32 `json:"protein_end,omitempty"`
	Codons       string `json:"codons,omitempty"`
	Exon         string `json:"exon,omitempty"`
	AminoAcids   string `json:"amino_acids,omitempty"`
	CDNAStart    uint32 `json:"cdna_start,omitempty"`
	CDNAEnd      uint32 `json:"cdna_end,omitempty"`
}

// Coding reports whether VEP attached protein-level notations.
func (tc *TranscriptConsequence) Coding() bool {
	return tc.HGVSp != ""
}

// Endpoint describes the human HGVS VEP POST endpoint.
type Endpoint struct{}

func (Endpoint) URLSuffix() string {
	return "/vep/human/hgvs"
}

func (Endpoint) PayloadTemplate() string {
	return `{"hgvs": 1, "numbers": 1, "canonical": 1, "NMD": 1, "hgvs_notations": {ids}}`
}

// Key returns the notation the analysis answers; VEP echoes it back in
// the input field.
func (Endpoint) Key(a *Analysis) string {
	return a.Input
}

func (Endpoint) MaxBatchSize() int {
	return getter.DefaultMaxBatchSize
}

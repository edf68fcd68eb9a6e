// Package transcript models the lookup endpoint of the Ensembl REST
// API and the consequence calculations applied to fetched transcripts:
// codon translation, nonsense-mediated-decay classification and
// variant-allele editing of genomic sequences.
package transcript

import (
	"context"

	"ensbatch/internal/ensembl"
	"ensbatch/internal/getter"
	"ensbatch/internal/sequence"
)

// Transcript is an expanded transcript record from the lookup endpoint.
type Transcript struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Start       uint32            `json:"start"`
	End         uint32            `json:"end"`
	Strand      ensembl.Strand    `json:"strand"`
	Translation *Translation      `json:"Translation,omitempty"`
	UTRs        []Utr             `json:"UTR,omitempty"`
	Exons       []Exon            `json:"Exon,omitempty"`
	Canonical   ensembl.Canonical `json:"is_canonical"`
	Species     string            `json:"species"`
	Biotype     ensembl.Biotype   `json:"biotype"`
}

// UtrType distinguishes the two untranslated regions.
type UtrType string

const (
	FivePrimeUtr  UtrType = "five_prime_utr"
	ThreePrimeUtr UtrType = "three_prime_utr"
)

// Utr is one untranslated region of a transcript.
type Utr struct {
	ID     string         `json:"id"`
	Parent string         `json:"Parent"`
	Start  uint32         `json:"start"`
	End    uint32         `json:"end"`
	Strand ensembl.Strand `json:"strand"`
	Type   UtrType        `json:"type"`
}

// Exon is one exon of a transcript.
type Exon struct {
	ID     string         `json:"id"`
	Start  uint32         `json:"start"`
	End    uint32         `json:"end"`
	Strand ensembl.Strand `json:"strand"`
}

// Translation is the translated span of a coding transcript.
type Translation struct {
	ID     string `json:"id"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
	Length uint32 `json:"length"`
}

// GenomicSequence fetches the transcript's masked genomic span through
// the shared sequence getter.
func (t *Transcript) GenomicSequence(ctx context.Context, c getter.Client[sequence.GenomicSequence]) (sequence.GenomicSequence, error) {
	return c.Get(ctx, t.ID)
}

// CdnaSequence fetches the transcript's masked cDNA through the shared
// sequence getter.
func (t *Transcript) CdnaSequence(ctx context.Context, c getter.Client[sequence.CdnaSequence]) (sequence.CdnaSequence, error) {
	return c.Get(ctx, t.ID)
}

// Endpoint describes the transcript lookup POST endpoint.
type Endpoint struct{}

func (Endpoint) URLSuffix() string { return "/lookup/id" }

func (Endpoint) PayloadTemplate() string {
	return `{"expand": 1, "utr": 1, "ids": {ids}}`
}

func (Endpoint) Key(t *Transcript) string { return t.ID }

// MaxBatchSize is far above the default; the lookup endpoint accepts up
// to 1000 ids per call.
func (Endpoint) MaxBatchSize() int { return 1000 }

// Package sequence models the sequence endpoints of the Ensembl REST
// API and pure helpers over nucleotide sequences. All sequences are
// requested with feature masking, so exonic bases arrive uppercase and
// intronic bases lowercase.
package sequence

import (
	"fmt"
	"strings"

	"ensbatch/internal/getter"
)

// GenomicSequence is the masked genomic span of a feature.
type GenomicSequence struct {
	Query string `json:"query"`
	ID    string `json:"id"`
	Desc  string `json:"desc,omitempty"`
	Seq   string `json:"seq"`
}

// CdnaSequence is the masked cDNA of a transcript.
type CdnaSequence struct {
	Query string `json:"query"`
	ID    string `json:"id"`
	Desc  string `json:"desc,omitempty"`
	Seq   string `json:"seq"`
}

// CodingSequence is the masked coding sequence of a transcript.
type CodingSequence struct {
	Query string `json:"query"`
	ID    string `json:"id"`
	Desc  string `json:"desc,omitempty"`
	Seq   string `json:"seq"`
}

func (s *GenomicSequence) Exons() []string { return Exons(s.Seq) }
func (s *CdnaSequence) Exons() []string    { return Exons(s.Seq) }
func (s *CodingSequence) Exons() []string  { return Exons(s.Seq) }

// Exons splits a feature-masked sequence on case boundaries and returns
// the runs uppercased.
func Exons(seq string) []string {
	var output []string
	start, end := 0, 1
	for end < len(seq) {
		if isUpper(seq[start]) == isUpper(seq[end]) {
			end++
			continue
		}
		output = append(output, strings.ToUpper(seq[start:end]))
		start = end
		end++
	}
	if end > 1 {
		output = append(output, strings.ToUpper(seq[start:]))
	}
	return output
}

// ReverseComplement returns the reverse complementary sequence,
// preserving case.
func ReverseComplement(seq string) (string, error) {
	out := make([]byte, 0, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		c, ok := complement(seq[i])
		if !ok {
			return "", fmt.Errorf("%q is not a recognized nucleotide base", seq[i])
		}
		out = append(out, c)
	}
	return string(out), nil
}

func complement(b byte) (byte, bool) {
	switch b {
	case 'a':
		return 't', true
	case 'A':
		return 'T', true
	case 'c':
		return 'g', true
	case 'C':
		return 'G', true
	case 'g':
		return 'c', true
	case 'G':
		return 'C', true
	case 't':
		return 'a', true
	case 'T':
		return 'A', true
	}
	return 0, false
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// GenomicEndpoint describes the sequence POST endpoint requesting
// genomic spans.
type GenomicEndpoint struct{}

func (GenomicEndpoint) URLSuffix() string { return "/sequence/id" }

func (GenomicEndpoint) PayloadTemplate() string {
	return `{"type": "genomic", "mask_feature": 1, "ids": {ids}}`
}

func (GenomicEndpoint) Key(s *GenomicSequence) string { return s.Query }

func (GenomicEndpoint) MaxBatchSize() int { return getter.DefaultMaxBatchSize }

// CdnaEndpoint describes the sequence POST endpoint requesting cDNA.
type CdnaEndpoint struct{}

func (CdnaEndpoint) URLSuffix() string { return "/sequence/id" }

func (CdnaEndpoint) PayloadTemplate() string {
	return `{"type": "cdna", "mask_feature": 1, "ids": {ids}}`
}

func (CdnaEndpoint) Key(s *CdnaSequence) string { return s.Query }

func (CdnaEndpoint) MaxBatchSize() int { return getter.DefaultMaxBatchSize }

// CodingEndpoint describes the sequence POST endpoint requesting coding
// sequence.
type CodingEndpoint struct{}

func (CodingEndpoint) URLSuffix() string { return "/sequence/id" }

func (CodingEndpoint) PayloadTemplate() string {
	return `{"type": "cds", "mask_feature": 1, "ids": {ids}}`
}

func (CodingEndpoint) Key(s *CodingSequence) string { return s.Query }

func (CodingEndpoint) MaxBatchSize() int { return getter.DefaultMaxBatchSize }

// Package ensembl holds the shared vocabulary types returned by the
// Ensembl REST API. Decoding is deliberately tolerant: the API encodes
// the same concept differently across endpoints (strands as numbers or
// strings, canonical flags as 0/1 integers), and new biotypes and
// consequence terms appear between releases.
package ensembl

import (
	"encoding/json"
	"fmt"
)

// Strand is a genomic strand designator.
type Strand int8

const (
	Plus  Strand = 1
	Minus Strand = -1
)

func (s Strand) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// ParseStrand accepts "+", "-", "1" and "-1".
func ParseStrand(v string) (Strand, error) {
	switch v {
	case "+", "1":
		return Plus, nil
	case "-", "-1":
		return Minus, nil
	}
	return 0, fmt.Errorf("%q is not a valid strand designator", v)
}

// UnmarshalJSON accepts both the numeric (1, -1) and the string
// ("+", "-", "1", "-1") encodings.
func (s *Strand) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		switch n {
		case 1:
			*s = Plus
			return nil
		case -1:
			*s = Minus
			return nil
		}
		return fmt.Errorf("%d is not a valid strand designator", n)
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("strand must be a number or a string: %w", err)
	}
	parsed, err := ParseStrand(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Strand) MarshalJSON() ([]byte, error) {
	return json.Marshal(int8(s))
}

// Canonical marks whether a transcript is the canonical one for its
// gene. The API encodes it as a 0/1 integer.
type Canonical bool

func (c *Canonical) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("canonical flag must be a number: %w", err)
	}
	*c = n != 0
	return nil
}

func (c Canonical) MarshalJSON() ([]byte, error) {
	if c {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Consequence is a sequence-ontology consequence term as reported by
// the variant effect predictor. Unknown terms decode as-is.
type Consequence string

const (
	TranscriptAblation                   Consequence = "transcript_ablation"
	SpliceAcceptorVariant                Consequence = "splice_acceptor_variant"
	SpliceDonorVariant                   Consequence = "splice_donor_variant"
	StopGained                           Consequence = "stop_gained"
	FrameshiftVariant                    Consequence = "frameshift_variant"
	StopLost                             Consequence = "stop_lost"
	StartLost                            Consequence = "start_lost"
	TranscriptAmplification              Consequence = "transcript_amplification"
	FeatureElongation                    Consequence = "feature_elongation"
	FeatureTruncation                    Consequence = "feature_truncation"
	InframeInsertion                     Consequence = "inframe_insertion"
	InframeDeletion                      Consequence = "inframe_deletion"
	MissenseVariant                      Consequence = "missense_variant"
	ProteinAlteringVariant               Consequence = "protein_altering_variant"
	SpliceDonorFifthBaseVariant          Consequence = "splice_donor_5th_base_variant"
	SpliceRegionVariant                  Consequence = "splice_region_variant"
	SpliceDonorRegionVariant             Consequence = "splice_donor_region_variant"
	SplicePolypyrimidineTractVariant     Consequence = "splice_polypyrimidine_tract_variant"
	IncompleteTerminalCodonVariant       Consequence = "incomplete_terminal_codon_variant"
	StartRetainedVariant                 Consequence = "start_retained_variant"
	StopRetainedVariant                  Consequence = "stop_retained_variant"
	SynonymousVariant                    Consequence = "synonymous_variant"
	CodingSequenceVariant                Consequence = "coding_sequence_variant"
	MatureMiRNAVariant                   Consequence = "mature_miRNA_variant"
	FivePrimeUTRVariant                  Consequence = "5_prime_UTR_variant"
	ThreePrimeUTRVariant                 Consequence = "3_prime_UTR_variant"
	NonCodingTranscriptExonVariant       Consequence = "non_coding_transcript_exon_variant"
	IntronVariant                        Consequence = "intron_variant"
	NMDTranscriptVariant                 Consequence = "NMD_transcript_variant"
	NonCodingTranscriptVariant           Consequence = "non_coding_transcript_variant"
	CodingTranscriptVariant              Consequence = "coding_transcript_variant"
	UpstreamGeneVariant                  Consequence = "upstream_gene_variant"
	DownstreamGeneVariant                Consequence = "downstream_gene_variant"
	TFBSAblation                         Consequence = "TFBS_ablation"
	TFBSAmplification                    Consequence = "TFBS_amplification"
	TFBindingSiteVariant                 Consequence = "TF_binding_site_variant"
	RegulatoryRegionAblation             Consequence = "regulatory_region_ablation"
	RegulatoryRegionAmplification        Consequence = "regulatory_region_amplification"
	RegulatoryRegionVariant              Consequence = "regulatory_region_variant"
	IntergenicVariant                    Consequence = "intergenic_variant"
	SequenceVariant                      Consequence = "sequence_variant"
)

// Biotype classifies a gene or transcript. Only the values seen in
// practice are named here; unknown biotypes decode as-is.
type Biotype string

const (
	BiotypeProteinCoding              Biotype = "protein_coding"
	BiotypeProteinCodingLoF           Biotype = "protein_coding_LoF"
	BiotypeProteinCodingCDSNotDefined Biotype = "protein_coding_CDS_not_defined"
	BiotypeNonsenseMediatedDecay      Biotype = "nonsense_mediated_decay"
	BiotypeNonStopDecay               Biotype = "non_stop_decay"
	BiotypeRetainedIntron             Biotype = "retained_intron"
	BiotypeProcessedTranscript        Biotype = "processed_transcript"
	BiotypeProcessedPseudogene        Biotype = "processed_pseudogene"
	BiotypeUnprocessedPseudogene      Biotype = "unprocessed_pseudogene"
	BiotypeLncRNA                     Biotype = "lncRNA"
	BiotypeMiRNA                      Biotype = "miRNA"
	BiotypeSnRNA                      Biotype = "snRNA"
	BiotypeSnoRNA                     Biotype = "snoRNA"
	BiotypeRRNA                       Biotype = "rRNA"
	BiotypeTRNA                       Biotype = "tRNA"
	BiotypeMiscRNA                    Biotype = "misc_RNA"
	BiotypeTEC                        Biotype = "TEC"
)

// Coding reports whether the biotype produces a translated protein.
func (b Biotype) Coding() bool {
	switch b {
	case BiotypeProteinCoding, BiotypeProteinCodingLoF, BiotypeNonsenseMediatedDecay, BiotypeNonStopDecay:
		return true
	}
	return false
}

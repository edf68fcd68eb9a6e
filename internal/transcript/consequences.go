package transcript

import (
	"fmt"

	"ensbatch/internal/ensembl"
	"ensbatch/internal/sequence"
)

// ConsequenceKind classifies where a variant lands in a transcript.
type ConsequenceKind string

const (
	KindIntron              ConsequenceKind = "intron"
	KindDisruptedSpliceSite ConsequenceKind = "disrupted_splice_site"
	KindCoding              ConsequenceKind = "coding"
)

// Consequences is the outcome of applying a variant allele to a
// transcript's masked genomic sequence. The protein fields are only
// meaningful for KindCoding.
type Consequences struct {
	Kind                  ConsequenceKind        `json:"kind"`
	EditedGenomicSequence string                 `json:"-"`
	EditedProtein         TranslationConsequence `json:"edited_protein"`
	UneditedProtein       TranslationConsequence `json:"unedited_protein"`
}

// MakeConsequences applies the variant allele covering the inclusive
// genomic interval [start, end] to the transcript's feature-masked
// genomic sequence and translates the edited and unedited forms. A
// variant flanked by intronic bases on both sides is an intron variant;
// flanked by one intronic and one exonic base it disrupts a splice
// site; otherwise the allele is spliced in (reverse-complemented for
// minus-strand transcripts) and both protein products are compared.
func MakeConsequences(seq *sequence.GenomicSequence, t *Transcript, start, end uint32, variantAllele string) (Consequences, error) {
	g := seq.Seq

	var upEnd, downStart int
	if t.Strand == ensembl.Minus {
		upEnd = int(t.End) - int(end)
		downStart = int(t.End) - int(start) + 1
	} else {
		upEnd = int(start) - int(t.Start)
		downStart = int(end) - int(t.Start) + 1
	}
	if upEnd < 1 || downStart < 1 || upEnd > len(g) || downStart >= len(g) {
		return Consequences{}, fmt.Errorf("variant %d-%d lies outside transcript %s (%d-%d)", start, end, t.ID, t.Start, t.End)
	}

	upstream := g[:upEnd]
	downstream := g[downStart:]

	upIntronic := isLower(upstream[len(upstream)-1])
	downIntronic := isLower(downstream[0])
	switch {
	case upIntronic && downIntronic:
		return Consequences{Kind: KindIntron}, nil
	case upIntronic != downIntronic:
		return Consequences{Kind: KindDisruptedSpliceSite}, nil
	}

	allele := variantAllele
	if t.Strand == ensembl.Minus {
		rc, err := sequence.ReverseComplement(variantAllele)
		if err != nil {
			return Consequences{}, err
		}
		allele = rc
	}
	edited := upstream + allele + downstream

	editedProtein := noTranslation()
	uneditedProtein := noTranslation()
	if t.Translation != nil {
		var offset int
		if t.Strand == ensembl.Minus {
			offset = int(t.End) - int(t.Translation.End)
		} else {
			offset = int(t.Translation.Start) - int(t.Start)
		}
		if offset < 0 || offset >= len(g) {
			return Consequences{}, fmt.Errorf("translation of %s lies outside its genomic sequence", t.ID)
		}
		editedProtein = Translate(edited[offset:])
		uneditedProtein = Translate(g[offset:])
	}

	return Consequences{
		Kind:                  KindCoding,
		EditedGenomicSequence: edited,
		EditedProtein:         editedProtein,
		UneditedProtein:       uneditedProtein,
	}, nil
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

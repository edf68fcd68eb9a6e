package transcript

import (
	"regexp"
	"strings"
)

// lastEJCRe locates the last exon-exon junction of a feature-masked
// sequence: the capture starts at the final exonic base preceding the
// last intron.
var lastEJCRe = regexp.MustCompile(`.+([A-Z][a-z]+[A-Z]+)$`)

// TranslationType classifies the outcome of translating a coding
// sequence.
type TranslationType string

const (
	TranslationNormal  TranslationType = "NORMAL"
	TranslationNMD     TranslationType = "NMD"
	TranslationNonstop TranslationType = "NONSTOP"
	TranslationError   TranslationType = "ERROR"
)

// TranslationConsequence is the protein-level outcome of translating a
// (possibly edited) transcript sequence. StopIndex and LastEJCIndex are
// offsets into the raw masked sequence; -1 means absent.
type TranslationConsequence struct {
	ProteinSequence string          `json:"protein_sequence"`
	StopIndex       int             `json:"stop_index"`
	LastEJCIndex    int             `json:"last_ejc_index"`
	Type            TranslationType `json:"translation_type"`
}

// noTranslation is the outcome for transcripts without a translated span.
func noTranslation() TranslationConsequence {
	return TranslationConsequence{StopIndex: -1, LastEJCIndex: -1, Type: TranslationError}
}

// Translate translates the exonic (uppercase) portion of a
// feature-masked sequence into protein. A stop codon more than 50
// bases upstream of the last exon junction marks the transcript for
// nonsense-mediated decay.
func Translate(seq string) TranslationConsequence {
	lastEJC := -1
	if m := lastEJCRe.FindStringSubmatchIndex(seq); m != nil {
		lastEJC = m[2]
	}

	var protein strings.Builder
	var codon [3]byte
	filled := 0
	consumed := 0

	for i := 0; i < len(seq); i++ {
		c := seq[i]
		consumed++
		switch c {
		case 'T':
			c = 'U'
		case 't':
			c = 'u'
		}
		if c < 'A' || c > 'Z' {
			// intronic or placeholder bases do not translate
			continue
		}
		codon[filled] = c
		filled++
		if filled < 3 {
			continue
		}
		filled = 0

		aa, ok := translateCodon(codon)
		if !ok {
			return TranslationConsequence{
				ProteinSequence: protein.String(),
				StopIndex:       -1,
				LastEJCIndex:    lastEJC,
				Type:            TranslationError,
			}
		}
		protein.WriteByte(aa)
		if aa == '*' {
			t := TranslationNormal
			if lastEJC >= 0 && consumed+50 < lastEJC {
				t = TranslationNMD
			}
			return TranslationConsequence{
				ProteinSequence: protein.String(),
				StopIndex:       consumed,
				LastEJCIndex:    lastEJC,
				Type:            t,
			}
		}
	}

	return TranslationConsequence{
		ProteinSequence: protein.String(),
		StopIndex:       -1,
		LastEJCIndex:    lastEJC,
		Type:            TranslationNonstop,
	}
}

// translateCodon maps an RNA codon to its amino acid, '*' for stop.
func translateCodon(codon [3]byte) (byte, bool) {
	switch string(codon[:]) {
	case "UGU", "UGC":
		return 'C', true
	case "GAU", "GAC":
		return 'D', true
	case "GAA", "GAG":
		return 'E', true
	case "UUU", "UUC":
		return 'F', true
	case "CAU", "CAC":
		return 'H', true
	case "AUU", "AUC", "AUA":
		return 'I', true
	case "AAA", "AAG":
		return 'K', true
	case "UUA", "UUG":
		return 'L', true
	case "AUG":
		return 'M', true
	case "AAU", "AAC":
		return 'N', true
	case "CAA", "CAG":
		return 'Q', true
	case "AGA", "AGG":
		return 'R', true
	case "AGU", "AGC":
		return 'S', true
	case "UGG":
		return 'W', true
	case "UAU", "UAC":
		return 'Y', true
	case "UAA", "UAG", "UGA":
		return '*', true
	}
	// four-fold degenerate families
	switch string(codon[:2]) {
	case "GC":
		return 'A', true
	case "GG":
		return 'G', true
	case "CU":
		return 'L', true
	case "CC":
		return 'P', true
	case "CG":
		return 'R', true
	case "UC":
		return 'S', true
	case "AC":
		return 'T', true
	case "GU":
		return 'V', true
	}
	return 0, false
}

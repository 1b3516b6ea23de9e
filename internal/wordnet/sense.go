package wordnet

// PickSense selects which sense of a word to put on a card, given the part
// of speech the level list expects. The tie-break rules form an explicit
// ranked-candidate table so they stay auditable:
//
//  1. first sense whose POS matches wantPOS;
//  2. otherwise the highest-frequency sense overall (senses are ordered
//     most-frequent-first);
//  3. noun override: when a noun was expected but the best overall sense is
//     not one, search for any noun sense before settling.
//
// An empty wantPOS skips rule 1. ok is false only when the word has no
// senses at all.
func PickSense(senses []Sense, wantPOS string) (Sense, bool) {
	if len(senses) == 0 {
		return Sense{}, false
	}

	if wantPOS != "" {
		for _, s := range senses {
			if s.POS == wantPOS {
				return s, true
			}
		}
	}

	best := senses[0]

	if wantPOS == POSNoun && best.POS != POSNoun {
		for _, s := range senses {
			if s.POS == POSNoun {
				return s, true
			}
		}
	}

	return best, true
}

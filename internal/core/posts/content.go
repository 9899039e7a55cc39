package posts

import "github.com/rivo/uniseg"

// Content length bounds, counted in grapheme clusters so a ZWJ sequence,
// flag, or keycap counts as one.
const (
	minContentGraphemes = 1
	maxContentGraphemes = 280
)

// ValidateContent enforces the emoji-only content rule: every grapheme
// cluster must be an emoji, and the cluster count must be within bounds.
//
// The predicate is pinned to the explicit rune tables below rather than a
// Unicode property lookup, so accepted input does not drift across Go or
// Unicode versions.
func ValidateContent(content string) error {
	if content == "" {
		return NewValidationError("content", "content must not be empty")
	}

	count := 0
	g := uniseg.NewGraphemes(content)
	for g.Next() {
		count++
		if count > maxContentGraphemes {
			return NewValidationError("content", "content must not exceed 280 emoji")
		}
		if !isEmojiCluster(g.Runes()) {
			return NewValidationError("content", "content must contain only emoji")
		}
	}

	return nil
}

// isEmojiCluster reports whether a single grapheme cluster renders as emoji.
// A cluster qualifies when every rune is an emoji base, an in-cluster
// modifier, or a text-default symbol promoted by VS16 or a combining keycap,
// and at least one base (or such a promotion) is present.
func isEmojiCluster(runes []rune) bool {
	hasBase := false
	hasPromotion := false // VS16 or keycap seen

	for _, r := range runes {
		switch {
		case isClusterModifier(r):
			if r == 0xFE0F || r == 0x20E3 {
				hasPromotion = true
			}
		case isEmojiBase(r):
			hasBase = true
		case isTextDefaultSymbol(r):
			// Only counts when the cluster carries VS16 or a keycap.
		default:
			return false
		}
	}

	return hasBase || hasPromotion
}

// isClusterModifier reports runes that may appear inside an emoji cluster
// without being emoji themselves.
func isClusterModifier(r rune) bool {
	switch {
	case r == 0x200D: // zero width joiner
	case r == 0xFE0E || r == 0xFE0F: // variation selectors (text/emoji presentation)
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
	case r == 0x20E3: // combining enclosing keycap
	case r >= 0xE0020 && r <= 0xE007F: // tag characters (subdivision flags)
	default:
		return false
	}
	return true
}

// isEmojiBase reports runes that are emoji-presentation by default.
func isEmojiBase(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols and pictographs
	case r >= 0x1FA70 && r <= 0x1FAFF: // symbols and pictographs extended-A
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators (flags)
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
	case r >= 0x2B05 && r <= 0x2B07: // arrows with emoji presentation
	case r == 0x2B1B || r == 0x2B1C: // black/white large squares
	case r == 0x2B50 || r == 0x2B55: // star, heavy large circle
	case r >= 0x231A && r <= 0x231B: // watch, hourglass
	case r >= 0x23E9 && r <= 0x23EC: // fast-forward family
	case r == 0x23F0 || r == 0x23F3: // alarm clock, hourglass with sand
	case r >= 0x25FB && r <= 0x25FE: // medium squares
	case r == 0x2934 || r == 0x2935: // curved arrows
	case r == 0x3030 || r == 0x303D: // wavy dash, part alternation mark
	case r == 0x3297 || r == 0x3299: // circled ideographs
	default:
		return false
	}
	return true
}

// isTextDefaultSymbol reports runes that only render as emoji when the
// cluster carries VS16 or a combining keycap (e.g. "1️⃣", "©️").
func isTextDefaultSymbol(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '#' || r == '*':
	case r == 0x00A9 || r == 0x00AE: // copyright, registered
	case r == 0x2122: // trade mark
	case r == 0x203C || r == 0x2049: // double exclamation, interrobang
	case r >= 0x2194 && r <= 0x21AA: // arrow variants
	case r >= 0x2300 && r <= 0x23FF: // misc technical
	case r >= 0x2460 && r <= 0x24FF: // enclosed alphanumerics
	case r >= 0x25A0 && r <= 0x25FF: // geometric shapes
	case r >= 0x2900 && r <= 0x297F: // supplemental arrows
	default:
		return false
	}
	return true
}

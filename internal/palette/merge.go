package palette

// Unlocked returns the colors whose Locked flag is unset, in order.
func Unlocked(colors []Color) []Color {
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		if !c.Locked {
			out = append(out, c)
		}
	}
	return out
}

// AllLocked reports whether every color in the sequence is locked. An empty
// sequence counts as all locked: there is nothing eligible to replace.
func AllLocked(colors []Color) bool {
	return len(Unlocked(colors)) == 0
}

// MergeShuffled combines the pre-shuffle sequence with freshly generated
// replacements. Locked colors keep their original position and value.
// Unlocked positions consume replacements in order; when the replacements run
// out, the original color stays so no slot is ever left empty. The result
// always has the same length as original.
func MergeShuffled(original, generated []Color) []Color {
	merged := make([]Color, 0, len(original))
	next := 0
	for _, c := range original {
		if c.Locked {
			merged = append(merged, c)
			continue
		}
		if next < len(generated) {
			merged = append(merged, generated[next])
			next++
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

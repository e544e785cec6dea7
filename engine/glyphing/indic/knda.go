package indic

// Kannada reph is spelled explicitly with a ZWJ. Without it, RA and VIRAMA
// followed by a consonant form a post-base consonant.
func kannada() *definition {
	return &definition{
		script: Kannada,
		blocks: runes(block(0x0C80)...),
		base:   0x0C80,
		pua:    runes(puaBlock(0xE600)...),
		virama: 0x0CCD,
		rows:   kannadaRows,
		reph:   "0CB0 0CCD 200D",
		passes: []pass{
			rephPass{skip: skipping(Nukta, PostBase, Matra)},
			belowBasePass{above: runes(0x0CBF, 0x0CC0, 0x0CC6, 0x0CC7, 0x0CC8, 0x0CCA, 0x0CCB, 0x0CCC)},
			newSplitPass("two-part", splitPost, skipSet{}, map[rune][2]rune{
				0x0CC0: {0x0CBF, 0x0CD5},
				0x0CC7: {0x0CC6, 0x0CD5},
				0x0CC8: {0x0CC6, 0x0CD6},
				0x0CCA: {0x0CC6, 0x0CC2},
			}),
		},
	}
}

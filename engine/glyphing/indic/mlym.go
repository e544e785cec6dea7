package indic

// Malayalam has no reph. The ra sign is a consonant form displayed left of
// its base, even left of a pre-base vowel sign's base.
func malayalam() *definition {
	classes := map[rune]Class{
		0x0D3B: Virama, // vertical bar virama
		0x0D3C: Virama, // circular virama
		0x0D4E: Other,  // dot reph
		0x0D5F: Vowel,
	}
	for _, r := range span(0x0D54, 0x0D56) { // chillus
		classes[r] = Other
	}
	return &definition{
		script:       Malayalam,
		blocks:       runes(block(0x0D00)...),
		base:         0x0D00,
		pua:          runes(puaBlock(0xE800)...),
		virama:       0x0D4D,
		classes:      classes,
		rows:         malayalamRows,
		preBaseForms: []string{"0D4D 0D30"},
		passes: []pass{
			preBasePass{name: "E/EE/AI", matras: runes(0x0D46, 0x0D47, 0x0D48), skip: clusterSkip},
			newSplitPass("O/OO/AU", splitPre, clusterSkip, map[rune][2]rune{
				0x0D4A: {0x0D46, 0x0D3E},
				0x0D4B: {0x0D47, 0x0D3E},
				0x0D4C: {0x0D46, 0x0D57},
			}),
			preBaseFormPass{skip: skipping(Nukta, PostBase)},
		},
	}
}

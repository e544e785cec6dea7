package indic

// Devanagari is the only script which accepts font-supplied ligature tables.
func devanagari() *definition {
	classes := map[rune]Class{0x0900: Modifier}
	for _, r := range span(0x0951, 0x0954) {
		classes[r] = Modifier
	}
	for _, r := range span(0x0972, 0x0977) {
		classes[r] = Vowel
	}
	for _, r := range span(0x0978, 0x097F) {
		classes[r] = Consonant
	}
	for _, r := range span(0xA8E0, 0xA8F1) { // Devanagari Extended cantillation marks
		classes[r] = Modifier
	}
	return &definition{
		script:  Devanagari,
		blocks:  runes(append(block(0x0900), span(0xA8E0, 0xA8FF)...)...),
		base:    0x0900,
		pua:     runes(puaBlock(0xE000)...),
		virama:  0x094D,
		classes: classes,
		rows:    devanagariRows,
		reph:    "0930 094D",
		passes: []pass{
			rephPass{skip: skipping(Nukta, PostBase, Matra).but(0x093F, 0x094E)},
			belowBasePass{above: runes(append([]rune{0x093A, 0x0955}, span(0x0945, 0x094C)...)...)},
			preBasePass{name: "I", matras: runes(0x093F, 0x094E), skip: clusterSkip},
		},
		overridable: true,
	}
}

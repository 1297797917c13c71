package ivsrender

// verticalForms maps punctuation to the forms used in vertical writing.
var verticalForms = map[rune]rune{
	'、': '︑',
	'。': '︒',
	'（': '︵',
	'）': '︶',
	'〈': '︿',
	'〉': '﹀',
	'《': '︽',
	'》': '︾',
	'「': '﹁',
	'」': '﹂',
	'『': '﹃',
	'』': '﹄',
	'【': '︻',
	'】': '︼',
	'-': '|',
}

// toVertical replaces characters with their vertical forms in place.
func toVertical(text []rune) []rune {
	for i, r := range text {
		if v, ok := verticalForms[r]; ok {
			text[i] = v
		}
	}
	return text
}

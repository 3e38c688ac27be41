package glyph

// Fractions maps "n/d" tokens to vulgar-fraction glyphs.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Fractions = NewTable("fractions",
	Entry{"1/2", "½"},
	Entry{"1/3", "⅓"},
	Entry{"1/4", "¼"},
	Entry{"1/5", "⅕"},
	Entry{"1/6", "⅙"},
	Entry{"1/7", "⅐"},
	Entry{"1/8", "⅛"},
	Entry{"1/9", "⅑"},
	Entry{"1/10", "⅒"},
	Entry{"2/3", "⅔"},
	Entry{"2/5", "⅖"},
	Entry{"3/4", "¾"},
	Entry{"3/5", "⅗"},
	Entry{"3/8", "⅜"},
	Entry{"4/5", "⅘"},
	Entry{"5/6", "⅚"},
	Entry{"5/8", "⅝"},
	Entry{"7/8", "⅞"},
)

// Superscripts maps single characters written after "^" to their
// superscript glyphs. Both the Latin "o" and the Cyrillic "о" produce the
// degree sign; the Latin letter is declared first and wins on reverse lookup.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Superscripts = NewTable("superscripts",
	Entry{"0", "⁰"},
	Entry{"1", "¹"},
	Entry{"2", "²"},
	Entry{"3", "³"},
	Entry{"4", "⁴"},
	Entry{"5", "⁵"},
	Entry{"6", "⁶"},
	Entry{"7", "⁷"},
	Entry{"8", "⁸"},
	Entry{"9", "⁹"},
	Entry{"—", "⁻"},
	Entry{"−", "⁻"},
	Entry{"+", "⁺"},
	Entry{"=", "⁼"},
	Entry{"(", "⁽"},
	Entry{")", "⁾"},
	Entry{"o", "°"},
	Entry{"о", "°"},
	Entry{`"`, "″"},
)

// SuperscriptRun lists the tokens that are promoted when they directly follow
// a superscript glyph.
const SuperscriptRun = "0123456789+=()"

// Package text canonicalizes and tokenizes bilingual Persian/English input.
// Every string that reaches the index or the scorer goes through Normalize
// first, so the rest of the engine only ever compares canonical forms.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// foldMap collapses Arabic-script letter variants to their Persian canonical
// forms. Users type both keyboard layouts interchangeably: Arabic yeh/kaf for
// Persian yeh/kaf, hamza-carrying alef forms for bare alef, teh marbuta for heh.
var foldMap = map[rune]rune{
	'ي': 'ی', // ي -> ی (Arabic yeh -> Farsi yeh)
	'ى': 'ی', // ى -> ی (alef maksura)
	'ئ': 'ی', // ئ -> ی (yeh with hamza)
	'ك': 'ک', // ك -> ک (Arabic kaf -> keheh)
	'أ': 'ا', // أ -> ا
	'إ': 'ا', // إ -> ا
	'آ': 'ا', // آ -> ا
	'ۀ': 'ه', // ۀ -> ه
	'ة': 'ه', // ة -> ه
	'ؤ': 'و', // ؤ -> و
}

// Normalize canonicalizes raw user or catalog text:
//
//  1. Unicode NFC composition
//  2. Arabic-script variant folding (foldMap)
//  3. Eastern Arabic-Indic digits -> ASCII digits
//  4. Latin lowercase
//  5. Everything that is not a letter or digit collapses to a single space
//     (hyphen and slash act as separators, same as whitespace)
//  6. Trim
//
// Total over any input, returns "" for empty input, and idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false

	for _, r := range s {
		if f, ok := foldMap[r]; ok {
			r = f
		}
		switch {
		case r >= '۰' && r <= '۹': // Extended (Farsi) digits ۰..۹
			r = '0' + (r - '۰')
		case r >= '٠' && r <= '٩': // Arabic-Indic digits ٠..٩
			r = '0' + (r - '٠')
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		}

		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		// Separator or junk: collapse the run into one space.
		pendingSpace = true
	}

	return b.String()
}

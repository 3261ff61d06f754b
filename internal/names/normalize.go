package names

import "strings"

// Accented Latin characters mapped to their plain ASCII equivalents. The
// stats feed records names with diacritics ("Luka Dončić") while sportsbook
// feeds tend to flatten them ("Luka Doncic"); this table bridges the two.
var diacritics = map[rune]rune{
	'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a', 'ã': 'a',
	'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
	'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
	'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
	'ć': 'c', 'č': 'c', 'ç': 'c',
	'ñ': 'n',
	'š': 's',
	'ž': 'z',
	'ý': 'y', 'ÿ': 'y',
	'đ': 'd',
	'Á': 'A', 'À': 'A', 'Ä': 'A', 'Â': 'A', 'Ã': 'A',
	'É': 'E', 'È': 'E', 'Ë': 'E', 'Ê': 'E',
	'Í': 'I', 'Ì': 'I', 'Ï': 'I', 'Î': 'I',
	'Ó': 'O', 'Ò': 'O', 'Ö': 'O', 'Ô': 'O', 'Õ': 'O',
	'Ú': 'U', 'Ù': 'U', 'Ü': 'U', 'Û': 'U',
	'Ć': 'C', 'Č': 'C', 'Ç': 'C',
	'Ñ': 'N',
	'Š': 'S',
	'Ž': 'Z',
	'Ý': 'Y', 'Ÿ': 'Y',
	'Đ': 'D',
}

// Normalize strips diacritics from a name so that spellings from different
// data sources compare equal. Characters outside the table pass through
// unchanged. Callers should try an exact match first and fall back to the
// normalized form.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if plain, ok := diacritics[r]; ok {
			return plain
		}
		return r
	}, name)
}

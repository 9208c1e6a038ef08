package phone_forward

const (
	alphabetSize  = 12
	invalidSymbol = alphabetSize

	starSymbol = 10
	hashSymbol = 11
)

// Returns the trie edge for the given character
// Arguments:
//
//	c - character of a phone number
//
// Returns:
//
//	uint8 - 0-9 for digits, 10 for '*', 11 for '#' and invalidSymbol otherwise
func symbolOf(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c == '*':
		return starSymbol
	case c == '#':
		return hashSymbol
	}

	return invalidSymbol
}

// Returns the character for the given trie edge. Inverse of symbolOf().
func charOf(symbol uint8) byte {
	switch {
	case symbol < starSymbol:
		return '0' + symbol
	case symbol == starSymbol:
		return '*'
	case symbol == hashSymbol:
		return '#'
	}

	return '?'
}

// Checks whether the given string is a valid phone number
// A valid number is non-empty and consists of '0'-'9', '*' and '#' only.
// Arguments:
//
//	num - number to be checked
//
// Returns:
//
//	bool - true if the number is valid
func IsValidNumber(num string) bool {
	if len(num) == 0 {
		return false
	}

	for i := 0; i < len(num); i++ {
		if symbolOf(num[i]) == invalidSymbol {
			return false
		}
	}

	return true
}

// Compares two phone numbers
// Characters are compared by their symbol, so '*' sorts after '9' and
// before '#'. A proper prefix sorts before the longer number.
// Arguments:
//
//	a - first number
//	b - second number
//
// Returns:
//
//	int - negative if a < b, positive if a > b, 0 if equal
func CompareNumbers(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			sa, sb := symbolOf(a[i]), symbolOf(b[i])
			if sa < sb || (sa == sb && a[i] < b[i]) {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	}

	return 1
}

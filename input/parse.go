package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Integer is the constraint for ParseInt.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ParseInt parses a decimal token into an integer of type T.
// Out-of-range values and malformed tokens are reported with the
// target type and the offending token.
func ParseInt[T Integer](token string) (T, error) {
	var zero T
	var bits = bitSize[T]()
	if isSigned[T]() {
		n, err := strconv.ParseInt(token, 10, bits)
		if err != nil {
			return zero, fmt.Errorf("cannot parse token for type %T: %s", zero, token)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(token, 10, bits)
	if err != nil {
		return zero, fmt.Errorf("cannot parse token for type %T: %s", zero, token)
	}
	return T(n), nil
}

func isSigned[T Integer]() bool {
	var x T
	x--
	return x < 0
}

func bitSize[T Integer]() int {
	var x T = 1
	n := 0
	for x != 0 {
		x <<= 1
		n++
	}
	return n
}

// Ints splits s at sep and parses every token, ignoring surrounding white space.
// An empty separator splits at runs of white space.
func Ints[T Integer](s string, sep string) ([]T, error) {
	var tokens []string
	if sep == "" {
		tokens = strings.Fields(s)
	} else {
		tokens = strings.Split(s, sep)
	}
	values := make([]T, 0, len(tokens))
	for _, token := range tokens {
		v, err := ParseInt[T](strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Digits converts a line of decimal characters into their values.
func Digits(line string) ([]int, error) {
	digits := make([]int, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid character in decimal string: %q", c)
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}

package gen

// Charsets for string generation.
const (
	CharsetAlpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// String generates a printable ASCII string of length [0, maxLen].
func String(maxLen int) Gen[string] {
	return StringFrom(CharsetPrintable, maxLen)
}

// StringFrom generates a string of length [0, maxLen] using characters from
// charset.
func StringFrom(charset string, maxLen int) Gen[string] {
	if maxLen < 0 {
		maxLen = 0
	}
	return func(s *Source) string {
		n := s.Intn(maxLen + 1)
		if n == 0 {
			return ""
		}
		b := make([]byte, n)
		for i := range b {
			b[i] = charset[s.Intn(len(charset))]
		}
		return string(b)
	}
}

// Identifier generates an identifier of length [1, maxLen]: a letter or
// underscore followed by letters, digits, or underscores.
func Identifier(maxLen int) Gen[string] {
	if maxLen < 1 {
		maxLen = 1
	}
	const startChars = CharsetAlpha + "_"
	const bodyChars = CharsetAlphaNum + "_"
	return func(s *Source) string {
		n := 1 + s.Intn(maxLen)
		b := make([]byte, n)
		b[0] = startChars[s.Intn(len(startChars))]
		for i := 1; i < n; i++ {
			b[i] = bodyChars[s.Intn(len(bodyChars))]
		}
		return string(b)
	}
}

// Bytes generates a byte slice of length [0, maxLen].
func Bytes(maxLen int) Gen[[]byte] {
	if maxLen < 0 {
		maxLen = 0
	}
	return func(s *Source) []byte {
		n := s.Intn(maxLen + 1)
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(s.Intn(256))
		}
		return b
	}
}

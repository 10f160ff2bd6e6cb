package internal

// Alphabet is the 32 symbol encoding table. It is the digits plus the
// lowercase letters without i, l, o and u.
const Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const invalidValue = 0xFF

// decodeTable maps every ASCII byte to its 5 bit value or invalidValue.
// Uppercase folds to lowercase; o/O read as 0 and i/I/l/L read as 1.
var decodeTable = func() [128]byte {
	var dec [128]byte
	for i := range dec {
		dec[i] = invalidValue
	}

	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		dec[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			dec[c-('a'-'A')] = byte(i)
		}
	}

	dec['o'], dec['O'] = 0, 0
	dec['i'], dec['I'] = 1, 1
	dec['l'], dec['L'] = 1, 1

	return dec
}()

// SymbolFor returns the alphabet symbol for v. v must be below 32.
func SymbolFor(v byte) byte {
	return Alphabet[v&0x1F]
}

// ValueFor returns the 5 bit value of c, folding case and aliases.
func ValueFor(c byte) (byte, bool) {
	if c >= byte(len(decodeTable)) {
		return 0, false
	}
	v := decodeTable[c]
	if v == invalidValue {
		return 0, false
	}
	return v, true
}

package routepattern

import "unicode/utf8"

// Adapted from the regexp package (only \ and / are special): https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmap used by specialRegexText to check whether a character must be escaped
// inside a placeholder regex.
var specialRegexTextBytes [16]byte

func init() {
	for _, b := range []byte(`\/`) {
		specialRegexTextBytes[b%16] |= 1 << (b / 16)
	}
}

// specialRegexText reports whether byte b needs a backslash inside "/.../".
func specialRegexText(b byte) bool {
	return b < utf8.RuneSelf && specialRegexTextBytes[b%16]&(1<<(b/16)) != 0
}

// escapeRegexText is the inverse of the escape decoding done by the Scanner
// for TokenRegexText.
func escapeRegexText(s string) string {
	// A byte loop is correct because both special characters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if specialRegexText(s[i]) {
			break
		}
	}
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if specialRegexText(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}

	return string(b[:j])
}

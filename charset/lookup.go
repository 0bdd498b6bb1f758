/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ARM-software/detat/commonerrors"
)

// LookupCharset returns the encoding with the specified charsetLabel, and its canonical
// name. Matching is case-insensitive and ignores
// leading and trailing whitespace.
func LookupCharset(charsetLabel string) (charsetEnc encoding.Encoding, charsetName string, err error) {
	charsetEnc, err = findCharsetEncoding(charsetLabel)
	if err != nil {
		if commonerrors.Any(err, commonerrors.ErrUnsupported) {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnsupported, err, "charset [%v] is not supported by go", charsetLabel)
		} else {
			err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "charset [%v] is invalid", charsetLabel)
		}
		return
	}
	charsetName, err = htmlindex.Name(charsetEnc)
	if err == nil {
		return
	}
	charsetName, err = ianaindex.IANA.Name(charsetEnc)
	return
}

// CanonicalName returns the canonical name of the given charset label or the
// label unchanged when it does not resolve to a known encoding.
func CanonicalName(charsetLabel string) string {
	_, charsetName, err := LookupCharset(charsetLabel)
	if err != nil {
		return charsetLabel
	}
	return charsetName
}

func findCharsetEncoding(charsetLabel string) (charsetEnc encoding.Encoding, err error) {
	// Check in http://www.w3.org/TR/encoding
	charsetEnc, err = findCharsetEncodingInAnIndex(htmlindex.Get, charsetLabel)
	if commonerrors.Any(err, nil, commonerrors.ErrUnsupported) {
		return
	}
	// Look at this index https://www.iana.org/assignments/character-sets/character-sets.xhtml
	charsetEnc, err = findCharsetEncodingInAnIndex(ianaindex.IANA.Encoding, charsetLabel)
	if commonerrors.Any(err, nil, commonerrors.ErrUnsupported) {
		return
	}
	// Look at the list of known unsupported charsets
	charsetEnc, err = findCharsetEncodingInAnIndex(GetUnsupported, charsetLabel)
	return
}

func findCharsetEncodingInAnIndex(indexSearch func(string) (encoding.Encoding, error), charsetLabel string) (charsetEnc encoding.Encoding, err error) {
	charsetEnc, err = checkEncodingSupport(indexSearch(charsetLabel))
	if commonerrors.Any(err, nil, commonerrors.ErrUnsupported) {
		return
	}
	otherLabel, err := getEncodingMapping().GetCanonicalName(charsetLabel)
	if err != nil {
		return
	}
	charsetEnc, err = checkEncodingSupport(indexSearch(otherLabel))
	return
}

func checkEncodingSupport(charsetEnc encoding.Encoding, err error) (encoding.Encoding, error) {
	// according to index documentation, if the error is nil but the encoding as well, then the encoding should be considered as unsupported by the language
	newErr := err
	if err == nil {
		if charsetEnc == nil {
			newErr = commonerrors.New(commonerrors.ErrUnsupported, "unsupported charset encoding")
		}
	}
	return charsetEnc, newErr
}

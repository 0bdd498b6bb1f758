/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/safeio"
)

// Trap is the behaviour applied when a byte sequence is invalid under the
// claimed encoding during decoding.
type Trap int

const (
	// TrapStrict fails on the first invalid byte sequence.
	TrapStrict Trap = iota
	// TrapReplace substitutes invalid byte sequences with U+FFFD; decoding always succeeds.
	TrapReplace
	// TrapIgnore drops invalid byte sequences; decoding always succeeds.
	TrapIgnore
)

func (t Trap) String() string {
	switch t {
	case TrapStrict:
		return "strict"
	case TrapReplace:
		return "replace"
	case TrapIgnore:
		return "ignore"
	}
	return "unknown"
}

// ParseTrap parses a trap name. Matching is case-insensitive and ignores
// leading and trailing whitespace.
func ParseTrap(name string) (Trap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict":
		return TrapStrict, nil
	case "replace":
		return TrapReplace, nil
	case "ignore":
		return TrapIgnore, nil
	}
	return TrapStrict, commonerrors.Newf(commonerrors.ErrInvalid, "invalid decoder trap: %v", name)
}

// DecodeText decodes content under the given source encoding into UTF-8 text,
// applying the trap policy on malformed byte sequences.
//
// The golang.org/x/text decoders never fail on malformed input: they
// substitute U+FFFD instead. Trap handling is therefore performed on the
// substitutions: strict fails when the decode introduced replacement runes
// which were not legitimately encoded in the source, replace keeps them and
// ignore drops every replacement rune.
func DecodeText(ctx context.Context, content []byte, charsetEnc encoding.Encoding, trap Trap) (text string, err error) {
	err = commonerrors.ConvertContextError(ctx.Err())
	if err != nil {
		return
	}
	if charsetEnc == unicode.UTF8 {
		return decodeUTF8(content, trap)
	}
	decoded, err := safeio.ReadAll(ctx, transform.NewReader(bytes.NewReader(content), charsetEnc.NewDecoder()))
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMalformed, err, "decoding failed")
		return
	}
	text = string(decoded)
	introduced := strings.Count(text, string(utf8.RuneError)) - sourceReplacementCount(content, charsetEnc)
	if introduced <= 0 {
		return
	}
	switch trap {
	case TrapStrict:
		text = ""
		err = commonerrors.Newf(commonerrors.ErrMalformed, "%v invalid byte sequence(s) in input", introduced)
	case TrapIgnore:
		text = strings.ReplaceAll(text, string(utf8.RuneError), "")
	}
	return
}

func decodeUTF8(content []byte, trap Trap) (text string, err error) {
	switch trap {
	case TrapStrict:
		if !utf8.Valid(content) {
			err = commonerrors.New(commonerrors.ErrMalformed, "invalid UTF-8 byte sequence in input")
			return
		}
		text = string(content)
	case TrapReplace:
		text = strings.ToValidUTF8(string(content), string(utf8.RuneError))
	case TrapIgnore:
		text = strings.ToValidUTF8(string(content), "")
	}
	return
}

// sourceReplacementCount counts the U+FFFD runes the source itself encodes so
// that they are not mistaken for decoder substitutions. Encodings which cannot
// represent U+FFFD cannot contribute any.
func sourceReplacementCount(content []byte, charsetEnc encoding.Encoding) int {
	encoded, err := charsetEnc.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	if err != nil || len(encoded) == 0 {
		return 0
	}
	roundTrip, err := charsetEnc.NewDecoder().Bytes(encoded)
	if err != nil || string(roundTrip) != string(utf8.RuneError) {
		return 0
	}
	return bytes.Count(content, encoded)
}

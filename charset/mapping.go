/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"strings"
	"sync"

	"github.com/ARM-software/detat/commonerrors"
)

var (
	mapping     charsetEncodingMapping
	mappingOnce sync.Once
)

type ICharsetEncodingMapping interface {
	GetCanonicalName(alias string) (string, error)
}

type charsetEncodingMapping struct {
	mapping map[string]string
}

func (m *charsetEncodingMapping) GetCanonicalName(alias string) (name string, err error) {
	name, found := m.mapping[strings.ToLower(strings.TrimSpace(alias))]
	if !found {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "charset alias [%v] was not found in the list of supported Charsets", alias)
	}
	return
}

func initialiseMapping() {
	mappingOnce.Do(func() {
		// This mapping list was created based on the following indexes:
		// - https://www.iana.org/assignments/character-sets/character-sets.xhtml
		// - https://encoding.spec.whatwg.org/encodings.json
		// It also covers the spellings emitted by the detector backends which
		// neither the WHATWG nor the IANA index know about.
		mapping = charsetEncodingMapping{mapping: map[string]string{
			"iso-ir-6":         "US-ASCII",
			"ansi_x3.4-1968":   "US-ASCII",
			"ansi_x3.4-1986":   "US-ASCII",
			"iso_646.irv:1991": "US-ASCII",
			"iso646-us":        "US-ASCII",
			"us-ascii":         "US-ASCII",
			"us":               "US-ASCII",
			"ibm367":           "US-ASCII",
			"cp367":            "US-ASCII",
			"csascii":          "US-ASCII",

			"iso-ir-100":  "ISO_8859-1:1987",
			"iso_8859-1":  "ISO_8859-1:1987",
			"iso-8859-1":  "ISO_8859-1:1987",
			"latin1":      "ISO_8859-1:1987",
			"l1":          "ISO_8859-1:1987",
			"ibm819":      "ISO_8859-1:1987",
			"cp819":       "ISO_8859-1:1987",
			"csisolatin1": "ISO_8859-1:1987",
			"8859_1":      "ISO_8859-1:1987",
			"iso8859-1":   "ISO_8859-1:1987",

			"iso-ir-101":  "ISO_8859-2:1987",
			"iso_8859-2":  "ISO_8859-2:1987",
			"iso-8859-2":  "ISO_8859-2:1987",
			"latin2":      "ISO_8859-2:1987",
			"l2":          "ISO_8859-2:1987",
			"csisolatin2": "ISO_8859-2:1987",
			"8859_2":      "ISO_8859-2:1987",
			"iso8859-2":   "ISO_8859-2:1987",

			"iso-ir-144":     "ISO_8859-5:1988",
			"iso_8859-5":     "ISO_8859-5:1988",
			"iso-8859-5":     "ISO_8859-5:1988",
			"cyrillic":       "ISO_8859-5:1988",
			"csisolatincyrillic": "ISO_8859-5:1988",
			"iso8859-5":      "ISO_8859-5:1988",

			"iso-ir-127": "ISO_8859-6:1987",
			"iso_8859-6": "ISO_8859-6:1987",
			"iso-8859-6": "ISO_8859-6:1987",
			"arabic":     "ISO_8859-6:1987",
			"ecma-114":   "ISO_8859-6:1987",

			"iso-ir-126":       "ISO_8859-7:1987",
			"iso_8859-7":       "ISO_8859-7:1987",
			"iso-8859-7":       "ISO_8859-7:1987",
			"greek":            "ISO_8859-7:1987",
			"greek8":           "ISO_8859-7:1987",
			"ecma-118":         "ISO_8859-7:1987",
			"csisolatingreek":  "ISO_8859-7:1987",

			"iso-ir-138":       "ISO_8859-8:1988",
			"iso_8859-8":       "ISO_8859-8:1988",
			"iso-8859-8":       "ISO_8859-8:1988",
			"hebrew":           "ISO_8859-8:1988",
			"csisolatinhebrew": "ISO_8859-8:1988",

			"iso-ir-148":  "ISO_8859-9:1989",
			"iso_8859-9":  "ISO_8859-9:1989",
			"iso-8859-9":  "ISO_8859-9:1989",
			"latin5":      "ISO_8859-9:1989",
			"l5":          "ISO_8859-9:1989",
			"csisolatin5": "ISO_8859-9:1989",

			"iso_8859-15": "ISO-8859-15",
			"latin-9":     "ISO-8859-15",
			"latin9":      "ISO-8859-15",
			"csiso885915": "ISO-8859-15",

			"cskoi8r": "KOI8-R",
			"koi8r":   "KOI8-R",
			"koi8u":   "KOI8-U",

			"cp855":    "IBM855",
			"855":      "IBM855",
			"csibm855": "IBM855",
			"cp866":    "IBM866",
			"866":      "IBM866",
			"csibm866": "IBM866",

			"x-mac-cyrillic": "x-mac-cyrillic",
			"maccyrillic":    "x-mac-cyrillic",
			"mac-cyrillic":   "x-mac-cyrillic",
			"macintosh":      "macintosh",
			"mac":            "macintosh",
			"csmacintosh":    "macintosh",

			"cp1250":        "windows-1250",
			"cp1251":        "windows-1251",
			"cp1252":        "windows-1252",
			"cp1253":        "windows-1253",
			"cp1254":        "windows-1254",
			"cp1255":        "windows-1255",
			"cp1256":        "windows-1256",
			"cp1257":        "windows-1257",
			"cp1258":        "windows-1258",
			"ms932":         "Shift_JIS",
			"windows-31j":   "Shift_JIS",
			"cswindows31j":  "Shift_JIS",
			"sjis":          "Shift_JIS",
			"s_jis":         "Shift_JIS",
			"shift-jis":     "Shift_JIS",
			"x-sjis":        "Shift_JIS",
			"csshiftjis":    "Shift_JIS",
			"eucjp":         "EUC-JP",
			"x-euc-jp":      "EUC-JP",
			"cseucpkdfmtjapanese": "EUC-JP",
			"csiso2022jp":   "ISO-2022-JP",
			"euckr":         "EUC-KR",
			"x-euc-kr":      "EUC-KR",
			"cseuckr":       "EUC-KR",
			"ks_c_5601-1987": "EUC-KR",

			"chinese":     "GB2312",
			"csgb2312":    "GB2312",
			"gb_2312-80":  "GB2312",
			"iso-ir-58":   "GB2312",
			"x-gbk":       "GBK",
			"cp936":       "GBK",
			"ms936":       "GBK",
			"gb-18030":    "gb18030",
			"gb18030-2000": "gb18030",
			"csgb18030":   "gb18030",
			"big-5":       "Big5",
			"csbig5":      "Big5",
			"cn-big5":     "Big5",
			"x-x-big5":    "Big5",

			"tis620":     "TIS-620",
			"cstis620":   "TIS-620",
			"iso-8859-11": "TIS-620",

			"utf8":        "UTF-8",
			"utf-8":       "UTF-8",
			"csutf8":      "UTF-8",
			"unicode-1-1-utf-8": "UTF-8",
			"utf16":       "UTF-16",
			"csutf16":     "UTF-16",
			"utf-16be":    "UTF-16BE",
			"utf-16le":    "UTF-16LE",
			"utf32":       "UTF-32",
			"utf-32be":    "UTF-32BE",
			"utf-32le":    "UTF-32LE",
		}}
	})
}

func getEncodingMapping() ICharsetEncodingMapping {
	initialiseMapping()
	return &mapping
}

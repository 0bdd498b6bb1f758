/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"strings"

	"golang.org/x/text/encoding"

	"github.com/ARM-software/detat/commonerrors"
)

var (
	// Charsets the detector backends may report but for which golang.org/x/text
	// provides no codec.
	unsupportedCharsets = []string{
		"UTF-7",
		"UTF-7-IMAP",
		"ISO-2022-CN",
		"ISO-2022-KR",
		"EUC-TW",
		"X-ISO-10646-UCS-4-2143",
		"X-ISO-10646-UCS-4-3412",
		"IBM420_ltr",
		"IBM420_rtl",
		"IBM424_ltr",
		"IBM424_rtl",
	}
)

// GetUnsupported gets valid IANA charset encoding we know are not supported by golang but not reported as such.
func GetUnsupported(name string) (encoding.Encoding, error) {
	for i := range unsupportedCharsets {
		if strings.EqualFold(unsupportedCharsets[i], name) {
			return nil, nil
		}
	}
	return nil, commonerrors.New(commonerrors.ErrInvalid, "invalid encoding name")
}

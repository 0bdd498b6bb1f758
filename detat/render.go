/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package detat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/field"
	"github.com/ARM-software/detat/safeio"
)

// printMetadata writes the human readable statistics block for one item:
// a separator line followed by the source path (`-` for standard input), the
// detected charset, the confidence indicator and the language when available.
func printMetadata(w io.Writer, metadata Metadata, path *string) (err error) {
	_, err = fmt.Fprintf(w, "---\nPath: %v\nCharset: %v\nConfidence: %v\nLanguage: %v\n",
		field.OptionalString(path, "-"),
		metadata.Chardet.Charset,
		metadata.Chardet.ConfidenceString(),
		metadata.Chardet.Language)
	err = commonerrors.ConvertIOError(err)
	return
}

// writeJSONRecord writes one output record in JSON Lines framing: a single
// object, newline terminated, without pretty-printing.
func writeJSONRecord(ctx context.Context, w io.Writer, output Output) (err error) {
	record, err := json.Marshal(output)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "cannot serialise output record")
		return
	}
	record = append(record, '\n')
	err = safeio.WriteAll(ctx, w, record)
	return
}

/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package detat implements the detection/resolution/transcoding pipeline:
// bytes of unknown provenance are run through a charset detector, the guess is
// resolved against the caller configuration and the content is transcoded to
// UTF-8 (or passed through, or refused) before being rendered to the shared
// output stream.
package detat

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/ARM-software/detat/charset"
	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/config"
	"github.com/ARM-software/detat/field"
	"github.com/ARM-software/detat/logs"
	"github.com/ARM-software/detat/safeio"
)

// stdinAlias is the conventional path token naming standard input. An empty
// path literal is treated the same way.
const stdinAlias = "-"

// Detat sequences the pipeline over a list of input items. Processing is
// strictly sequential: each item is fully read, detected, resolved,
// transcoded and rendered before the next one begins.
type Detat struct {
	cfg      *config.Configuration
	fs       afero.Fs
	detector charset.ICharsetDetector
	trap     charset.Trap
	loggers  logs.Loggers
	stdin    io.Reader
}

// New creates a pipeline from a validated configuration. A nil filesystem
// defaults to the operating system one.
func New(cfg *config.Configuration, fs afero.Fs, loggers logs.Loggers) (d *Detat, err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	err = loggers.Check()
	if err != nil {
		return
	}
	trap, err := charset.ParseTrap(cfg.DecoderTrap)
	if err != nil {
		return
	}
	detector, err := charset.NewDetector(cfg.Detector)
	if err != nil {
		return
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	d = &Detat{
		cfg:      cfg,
		fs:       fs,
		detector: detector,
		trap:     trap,
		loggers:  loggers,
		stdin:    os.Stdin,
	}
	return
}

// Copy runs the pipeline over one reader and writes the rendered result to w.
// The returned metadata is the complete audit record of the item; it is
// returned even when the item failed so that the caller can log context.
func (d *Detat) Copy(ctx context.Context, r io.Reader, path *string, w io.Writer) (metadata Metadata, err error) {
	content, err := safeio.ReadAll(ctx, r)
	if err != nil {
		return
	}
	if len(content) == 0 {
		// nothing to detect nor to decode; the zero metadata is the record.
		if d.cfg.Stat && !d.cfg.JSON {
			err = printMetadata(w, metadata, path)
		}
		return
	}
	detection := d.detector.Detect(content)
	d.loggers.Log(fmt.Sprintf("predicted: %v, confidence: %v, language: %v", detection.Charset, detection.ConfidenceString(), detection.Language))

	decision := Resolve(detection, d.cfg.ConfidenceMin, d.cfg.FallbackEncoding, d.cfg.AllowBinary)
	switch decision.Kind {
	case DecisionRejectBinary:
		metadata = Metadata{Chardet: detection, ReadBytes: len(content)}
		err = commonerrors.New(commonerrors.ErrBinary, "input is binary")
		return
	case DecisionPassThroughBinary:
		metadata = Metadata{Chardet: detection, ReadBytes: len(content)}
		if d.cfg.Stat {
			if !d.cfg.JSON {
				err = printMetadata(w, metadata, path)
			}
		} else {
			err = safeio.WriteAll(ctx, w, content)
		}
		return
	}

	metadata = Metadata{
		Chardet:    detection,
		Encoding:   charset.CanonicalName(decision.Encoding),
		Fallbacked: decision.Fallbacked,
		ReadBytes:  len(content),
	}
	if d.cfg.Stat {
		if !d.cfg.JSON {
			err = printMetadata(w, metadata, path)
		}
		return
	}
	charsetEnc, _, lookupErr := charset.LookupCharset(decision.Encoding)
	if lookupErr != nil {
		err = commonerrors.WrapErrorf(lookupErr, nil, "no encoding %q (charset %q)", decision.Encoding, detection.Charset)
		return
	}
	text, err := charset.DecodeText(ctx, content, charsetEnc, d.trap)
	if err != nil {
		return
	}
	err = safeio.WriteAll(ctx, w, []byte(text))
	return
}

// CopyAsJSON runs the pipeline over one reader and writes a JSON Lines record
// to w. The content field is null when statistics only were requested or when
// the item carried no decodable text (binary or empty input).
func (d *Detat) CopyAsJSON(ctx context.Context, r io.Reader, path *string, w io.Writer) (metadata Metadata, err error) {
	var buffer bytes.Buffer
	metadata, err = d.Copy(ctx, r, path, &buffer)
	if err != nil {
		return
	}
	var content *string
	if !d.cfg.Stat && !metadata.Chardet.IsBinary() {
		content = field.ToOptionalString(buffer.String())
	}
	err = writeJSONRecord(ctx, w, Output{Path: path, Metadata: metadata, Content: content})
	return
}

// processItem opens one source, runs the pipeline and applies the post-hoc
// confidence check: a low confidence item without fallback has its best
// effort output emitted and is only then marked failed.
func (d *Detat) processItem(ctx context.Context, path string, w io.Writer) (metadata Metadata, err error) {
	reader := d.stdin
	var pathPtr *string
	if path != "" && path != stdinAlias {
		file, openErr := d.fs.Open(path)
		if openErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrNotFound, openErr, "cannot open input")
			return
		}
		defer func() { commonerrors.Ignore(file.Close()) }()
		reader = file
		pathPtr = field.ToOptionalString(path)
	}
	if d.cfg.JSON {
		metadata, err = d.CopyAsJSON(ctx, reader, pathPtr, w)
	} else {
		metadata, err = d.Copy(ctx, reader, pathPtr, w)
	}
	if err != nil {
		return
	}
	if metadata.ReadBytes > 0 && !metadata.Fallbacked && !metadata.Chardet.ClearsThreshold(d.cfg.ConfidenceMin) {
		err = commonerrors.Newf(commonerrors.ErrLowConfidence, "confidence: %v < %v (predicted: %v)",
			metadata.Chardet.ConfidenceString(), d.cfg.ConfidenceMin, metadata.Chardet.Charset)
	}
	return
}

// Run processes every path in order, writing to the shared output stream.
// An empty list reads standard input; the empty string and `-` alias standard
// input even when listed explicitly. Failures are local to one item and do
// not abort the batch; the aggregated error is the only batch level signal.
func (d *Detat) Run(ctx context.Context, paths []string, w io.Writer) error {
	if len(paths) == 0 {
		paths = []string{stdinAlias}
	}
	writer := bufio.NewWriter(w)
	var runErr *multierror.Error
	for i := range paths {
		if err := commonerrors.ConvertContextError(ctx.Err()); err != nil {
			runErr = multierror.Append(runErr, err)
			break
		}
		path := paths[i]
		display := path
		if display == "" {
			display = stdinAlias
		}
		if err := d.loggers.SetLogSource(display); err != nil {
			runErr = multierror.Append(runErr, err)
			break
		}
		_, err := d.processItem(ctx, path, writer)
		if err != nil {
			d.loggers.LogError(fmt.Sprintf("%v: %v", display, err))
			runErr = multierror.Append(runErr, fmt.Errorf("%v: %w", display, err))
		}
	}
	if err := commonerrors.ConvertIOError(writer.Flush()); err != nil {
		runErr = multierror.Append(runErr, err)
	}
	return runErr.ErrorOrNil()
}

// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"errors"
	"fmt"
	"strings"
)

// DataFormatError reports that an upload could not be interpreted as
// gazetteer data: a required column is missing or the file is not readable
// as tabular data. It is fatal for that load attempt only; the session and
// its existing records survive.
type DataFormatError struct {
	MissingColumns []string
	Err            error
}

func (e *DataFormatError) Error() string {
	if len(e.MissingColumns) > 0 {
		return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", "))
	}

	if e.Err != nil {
		return fmt.Sprintf("unreadable tabular data: %v", e.Err)
	}

	return "unreadable tabular data"
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// IsDataFormatError reports whether err is a data format problem that should
// be surfaced to the user as a bad upload rather than a server fault.
func IsDataFormatError(err error) bool {
	var dfe *DataFormatError

	return errors.As(err, &dfe)
}

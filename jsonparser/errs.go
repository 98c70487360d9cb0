/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package jsonparser

import "github.com/kcenon/jsonvalue/value"

// newErr builds a *value.Error via the package-exported constructor the
// value package's error table backs, keeping the parser's failures in the
// same taxonomy assignment/extraction errors use (spec.md §7).
func newErr(code value.ErrorCode, extra string) error {
	return value.NewParseError(code, extra)
}

// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal                  = "L0000"
	CodeFileNotFound                  = "L0001"
	CodeUnsuportedFileSystemOperation = "L0002"
	CodePermissionDenied              = "L0003"
	CodeInvalidToken                  = "L0004"
	CodeUnexpectedEOF                 = "L0005"
	CodeBuilderError                  = "L0006"
	CodeBuilderNil                    = "L0007"
)

const (
	CodeEOF = "_EOF_"
)

var (
	defaultNonFatal = map[string]bool{
		CodeInvalidToken: true,
		CodeFileNotFound: true,
	}
)

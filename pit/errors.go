// SPDX-License-Identifier: MIT

package pit

import "errors"

var (
	// ErrUnknownPreset indicates no built-in preset has the requested name.
	ErrUnknownPreset = errors.New("pit: unknown preset")

	// ErrUnknownFormat indicates an unsupported serialisation format.
	ErrUnknownFormat = errors.New("pit: unknown format")

	// ErrMissingField indicates a required scalar field is absent.
	ErrMissingField = errors.New("pit: missing required field")

	// ErrDecode indicates the payload could not be decoded into Params.
	ErrDecode = errors.New("pit: malformed parameter document")
)

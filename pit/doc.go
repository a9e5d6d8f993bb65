// SPDX-License-Identifier: MIT

// Package pit defines the parameter model of a tokamak pit: the annular
// excavation, its sector division and the elements placed inside it.
//
// What:
//
//   - Params is the complete, declarative description of one pit layout.
//   - DuctRing, Port and Stair are the placed elements, held by value.
//   - Default and Preset return the built-in parameter sets.
//   - DecodeJSON/EncodeJSON and DecodeTOML/EncodeTOML implement the canonical
//     snake_case schema shared by files, the HTTP API and the preset store.
//
// Immutability:
//
//   - Every record is a plain value. Engine packages take Params by value and
//     never write into its slices.
//   - Clone deep-copies the collections; the With* helpers return modified
//     copies, so "editing" a layout always yields a new instance.
//   - Built-in presets are constructed once at package initialisation and
//     handed out as deep copies.
//
// Errors:
//
//   - ErrUnknownPreset: no built-in preset with the requested name.
//   - ErrUnknownFormat: file extension or format name is not json/toml.
//   - ErrMissingField: a required scalar field is absent from the input.
//   - ErrDecode: the payload is not a well-typed parameter document.
package pit

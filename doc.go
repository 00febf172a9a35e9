package cerrgen

// Package cerrgen turns a declarative description of error domains into two C
// artifacts:
//
// - a header declaring an enumerated type with one constant per error code
// - a source stub declaring (but not yet populating) a code-to-string lookup function
//
// Values are assigned deterministically: a domain carries an integer offset and
// its members count downward from it, so member i receives offset - i. Emitted
// order mirrors input order exactly and output is byte-identical across runs
// for the same document.
//
// Design policy:
// - Keep only public APIs in the root package; rendering lives under internal/gen.
// - Validate once at the load boundary and report violations as Issues;
//   generation never starts on an invalid document.
// - Rendering is pure; file writing is a thin adapter (Generate/GenerateFiles).
//
// Typical usage:
//
//  doc, err := cerrgen.LoadFile("OS_Error.json", cerrgen.Options{})
//  err = cerrgen.GenerateFiles(doc, "OS_Error.h", "OS_Error.c", cerrgen.Options{})
//

package cerrgen

// Options controls where the domain list is found in the input document and
// which identifiers are spliced into the generated artifacts. The zero value
// reproduces the original OS error-code artifacts byte for byte.
type Options struct {
	RootKey       string // top-level key holding the domain list
	EnumTypeName  string // name of the generated enumerated type
	ToStringFn    string // name of the generated lookup function
	HeaderInclude string // header file name referenced by the source stub
	Title         string // first line of the header license comment
	Copyright     string // copyright line of the header license comment
	SPDX          string // SPDX license identifier
	Brief         string // doxygen @brief text for the enum
	Group         string // doxygen @ingroup for the enum
}

func (o Options) withDefaults() Options {
	if o.RootKey == "" {
		o.RootKey = "OS_Error_t"
	}
	if o.EnumTypeName == "" {
		o.EnumTypeName = "OS_Error_t"
	}
	if o.ToStringFn == "" {
		o.ToStringFn = "OS_Error_toString"
	}
	if o.HeaderInclude == "" {
		o.HeaderInclude = "OS_Error.h"
	}
	if o.Title == "" {
		o.Title = "OS return codes"
	}
	if o.Copyright == "" {
		o.Copyright = "Copyright (C) 2019-2021, HENSOLDT Cyber GmbH"
	}
	if o.SPDX == "" {
		o.SPDX = "BSD-3-Clause"
	}
	if o.Brief == "" {
		o.Brief = "OS error codes"
	}
	if o.Group == "" {
		o.Group = "OS_error"
	}
	return o
}

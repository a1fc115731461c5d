// Package schemadata bundles the CCMM XSD schema set so schema
// validation works out of the box, without an external checkout. The
// bundle is read-only, versioned data; callers that need a different
// schema revision pass their own file to the handler instead.
package schemadata

import (
	"embed"
	"fmt"
)

//go:embed ccmm
var bundle embed.FS

// Asset returns the named schema file.
func Asset(name string) ([]byte, error) {
	return bundle.ReadFile(name)
}

// MustAsset is like Asset but panics when the file is missing. Only for
// use with names known at compile time.
func MustAsset(name string) []byte {
	blob, err := Asset(name)
	if err != nil {
		panic(fmt.Sprintf("schemadata: %v", err))
	}
	return blob
}

// AssetNames lists the files in the bundle.
func AssetNames() []string {
	var names []string
	entries, err := bundle.ReadDir("ccmm/dataset")
	if err != nil {
		panic(fmt.Sprintf("schemadata: %v", err))
	}
	for _, e := range entries {
		names = append(names, "ccmm/dataset/"+e.Name())
	}
	return names
}

// DatasetSchema returns the XSD governing the dataset root element.
func DatasetSchema() []byte {
	return MustAsset("ccmm/dataset/schema.xsd")
}

package document

import (
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the format of a workflow document.
type Kind int

const (
	_ Kind = iota // zero value is an invalid kind

	KindXML
	KindJSON
)

// ParseKind maps "XML" or "JSON" (any case) to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindXML; k <= KindJSON; k++ {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, true
		}
	}

	return 0, false
}

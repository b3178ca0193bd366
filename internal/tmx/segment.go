// Package tmx streams sentence pairs out of Translation Memory eXchange
// documents without building a document tree, so multi-gigabyte corpora
// load in bounded memory.
package tmx

import (
	"encoding/xml"
	"strings"
)

// segmentText consumes the rest of a variant element from dec, the decoder
// having just returned the variant's start tag, and returns the trimmed
// text of the first seg element found at any depth inside it.
//
// The text of a segment is its direct character data: text before, between
// and after inline children. Content inside inline elements (bpt, ept, ph
// and friends) is markup payload, not translatable text, and is skipped.
// Elements are matched by local name so any namespace prefix is accepted.
// A variant without a seg yields the empty string.
func segmentText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	segDepth := 0
	segSeen := false
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if !segSeen && t.Name.Local == "seg" {
				segDepth = depth
				segSeen = true
			}
		case xml.EndElement:
			if depth == segDepth {
				segDepth = 0
			}
			depth--
		case xml.CharData:
			if segDepth != 0 && depth == segDepth {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// xmlNamespace is the reserved namespace bound to the xml prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// langAttr returns the language tag of a variant element, preferring the
// namespace-qualified xml:lang attribute and falling back to a bare lang
// attribute when no qualified one is present.
func langAttr(se xml.StartElement) string {
	bare := ""
	for _, a := range se.Attr {
		if a.Name.Local != "lang" {
			continue
		}
		switch a.Name.Space {
		case "xml", xmlNamespace:
			return a.Value
		case "":
			bare = a.Value
		}
	}
	return bare
}

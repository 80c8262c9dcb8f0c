package http

import (
	"fmt"
	"mime"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// latin1 is the charset HTTP/1.1 assumes for text types that declare none.
const latin1 = "iso-8859-1"

// decodeFunc converts a response body to text and reports the charset used.
type decodeFunc func(contentType string, body []byte) (string, string, error)

// policyDecode decodes body with the charset chosen by ResolveCharset.
func policyDecode(contentType string, body []byte) (string, string, error) {
	name := ResolveCharset(contentType, body)
	text, err := Decode(body, name)
	return text, name, err
}

// sniffDecode decodes body using the HTML encoding sniffing algorithm:
// BOM, then Content-Type, then meta tags, then a default.
func sniffDecode(contentType string, body []byte) (string, string, error) {
	enc, name, _ := charset.DetermineEncoding(body, contentType)
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(out), name, nil
}

// ResolveCharset picks the charset for a response body. A declared charset
// is used unless it is ISO-8859-1, which servers often report by default;
// otherwise the charset is inferred from the bytes, falling back to UTF-8.
func ResolveCharset(contentType string, body []byte) string {
	declared := DeclaredCharset(contentType)
	if declared != "" && !isLatin1(declared) && supported(declared) {
		return declared
	}
	if inferred := InferCharset(body); inferred != "" && supported(inferred) {
		return inferred
	}
	return "utf-8"
}

// DeclaredCharset returns the lowercased charset parameter of a Content-Type
// value. A text/* type without the parameter declares ISO-8859-1.
func DeclaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if cs := strings.Trim(params["charset"], `"' `); cs != "" {
		return strings.ToLower(cs)
	}
	if strings.HasPrefix(mediaType, "text/") {
		return latin1
	}
	return ""
}

// InferCharset guesses the charset of body from its bytes. It returns an
// empty string when no guess is available.
func InferCharset(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	res, err := chardet.NewTextDetector().DetectBest(body)
	if err != nil || res == nil {
		return ""
	}
	name := strings.ToLower(res.Charset)
	if name == "gb-18030" {
		name = "gb18030"
	}
	return name
}

// Decode converts body from the named charset to UTF-8 text.
func Decode(body []byte, name string) (string, error) {
	enc, _ := charset.Lookup(name)
	if enc == nil {
		return "", fmt.Errorf("unsupported charset %q", name)
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(out), nil
}

func supported(name string) bool {
	enc, _ := charset.Lookup(name)
	return enc != nil
}

func isLatin1(name string) bool {
	switch name {
	case "iso-8859-1", "iso8859-1", "iso_8859-1", "latin1", "latin-1", "l1":
		return true
	}
	return false
}

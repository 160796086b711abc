package fill

import (
	"strings"

	"golang.org/x/text/cases"
)

// defaultFillValue is returned for string parameters whose name matches no
// hint. It parses as a number, which keeps loosely-typed backends happy.
const defaultFillValue = "56"

// caseFolder normalizes parameter names for case-insensitive hint matching.
var caseFolder = cases.Fold()

// fillHint pairs a parameter-name fragment with a representative value.
type fillHint struct {
	fragment string
	value    string
}

// fillHints maps fragments of a parameter name to representative values.
// First match in declaration order wins, so more specific fragments come
// before the generic ones they contain.
var fillHints = []fillHint{
	{"email", "john.smith@example.com"},
	{"mail", "john.smith@example.com"},
	{"username", "john1234"},
	{"login", "john1234"},
	{"passwd", "FrAmE30."},
	{"password", "FrAmE30."},
	{"pwd", "FrAmE30."},
	{"token", "a1b2c3d4e5f6"},
	{"apikey", "a1b2c3d4e5f6"},
	{"firstname", "John"},
	{"lastname", "Smith"},
	{"fullname", "John Smith"},
	{"name", "John Smith"},
	{"phone", "55550178"},
	{"fax", "55550178"},
	{"address", "Main Street 123"},
	{"city", "San Francisco"},
	{"state", "California"},
	{"country", "United States"},
	{"zip", "90210"},
	{"postal", "90210"},
	{"url", "http://www.example.com/"},
	{"uri", "http://www.example.com/"},
	{"link", "http://www.example.com/"},
	{"host", "example.com"},
	{"domain", "example.com"},
	{"ip", "127.0.0.1"},
	{"lang", "en-US"},
	{"locale", "en-US"},
	{"currency", "USD"},
	{"search", "Spam or Eggs?"},
	{"query", "Spam or Eggs?"},
	{"keyword", "Spam or Eggs?"},
	{"descr", "Spam and eggs with spam."},
	{"comment", "Spam and eggs with spam."},
	{"message", "Spam and eggs with spam."},
	{"title", "Spam"},
	{"date", "2017-06-30"},
	{"time", "23:59:45"},
	{"year", "2017"},
	{"month", "6"},
	{"day", "30"},
	{"file", "file.txt"},
	{"path", "file.txt"},
	{"version", "1.0"},
	{"id", "56"},
	{"count", "1"},
	{"limit", "1"},
	{"page", "1"},
	{"size", "1"},
	{"sort", "asc"},
	{"order", "asc"},
}

// SmartFill returns a representative string for a parameter name.
//
// The name is matched case-insensitively against a table of common hints
// (email, name, address, date, ...); a name with no hint gets a generic
// numeric-looking value. SmartFill is the default StringFiller of a
// Synthesizer and can be replaced wholesale by hosts that carry their own
// form-filling logic.
func SmartFill(name string) string {
	folded := caseFolder.String(name)
	for _, hint := range fillHints {
		if strings.Contains(folded, hint.fragment) {
			return hint.value
		}
	}
	return defaultFillValue
}

// FileValue is the synthesized stand-in for a file parameter.
type FileValue struct {
	// Name is the parameter name the value was synthesized for
	Name string
	// Filename is the sample filename presented to the server
	Filename string
	// ContentType is the MIME type of the payload
	ContentType string
	// Content is the payload bytes
	Content []byte
}

// samplePNG is a minimal 1x1 transparent PNG used as the payload for file
// parameters. Real image bytes keep servers that sniff content happy.
var samplePNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// SmartFillFile returns a representative file value for a parameter name.
// It is the default FileFiller of a Synthesizer.
func SmartFillFile(name, filename string) any {
	return &FileValue{
		Name:        name,
		Filename:    filename,
		ContentType: "image/png",
		Content:     samplePNG,
	}
}

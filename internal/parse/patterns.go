package parse

import "regexp"

// dateFamily selects which date layout list timestamp parsing tries first.
// The export file never declares its locale, so the winning line pattern is
// the only hint available.
type dateFamily int

const (
	// familyDotted is day-first dot-separated (31.12.2023).
	familyDotted dateFamily = iota
	// familySlash is slash-separated with ambiguous day/month order
	// (12/31/23 or 31/12/23); US order is tried before European.
	familySlash
)

// linePattern pairs a line regexp with the date family its date token
// belongs to. Message patterns capture (date, time, author, body); system
// patterns capture (date, time, body).
type linePattern struct {
	re     *regexp.Regexp
	family dateFamily
}

// messagePatterns is tried in order and the first match wins. Order matters:
// the patterns overlap, and bracketed variants must be tried before looser
// dash-delimited ones with the same date shape.
var messagePatterns = []linePattern{
	// [31.12.2023, 10:30:25] Name: Message
	{regexp.MustCompile(`^\[(\d{1,2}\.\d{1,2}\.\d{4}),\s+(\d{1,2}:\d{2}:\d{2})\]\s*([^:]+?):\s*(.*)$`), familyDotted},
	// [31.12.23, 10:30:25] Name: Message
	{regexp.MustCompile(`^\[(\d{1,2}\.\d{1,2}\.\d{2}),\s+(\d{1,2}:\d{2}:\d{2})\]\s*([^:]+?):\s*(.*)$`), familyDotted},
	// 12/31/23, 10:30 AM - Name: Message
	{regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\s*[-–]\s*([^:]+?):\s*(.*)$`), familySlash},
	// [12/31/23, 10:30:25] Name: Message
	{regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\]\s*([^:]+?):\s*(.*)$`), familySlash},
	// 31.12.23, 10:30 - Name: Message
	{regexp.MustCompile(`^(\d{1,2}\.\d{1,2}\.\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\s*[-–]\s*([^:]+?):\s*(.*)$`), familyDotted},
	// 31/12/2023, 10:30 - Name: Message
	{regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\s*[-–]\s*([^:]+?):\s*(.*)$`), familySlash},
	// 12/31/23 10:30 - Name: Message (no comma)
	{regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\s*[-–]\s*([^:]+?):\s*(.*)$`), familySlash},
}

// systemPatterns match date+time prefixed lines with no author before a
// colon, e.g. encryption banners. Tried only after messagePatterns fail.
var systemPatterns = []linePattern{
	// [31.12.2023, 10:30:25] event text
	{regexp.MustCompile(`^\[(\d{1,2}\.\d{1,2}\.\d{4}),\s+(\d{1,2}:\d{2}:\d{2})\]\s*(.*)$`), familyDotted},
	// 12/31/23, 10:30 - event text
	{regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\s*[-–]\s*(.*)$`), familySlash},
	// [12/31/23, 10:30] event text
	{regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\]\s*(.*)$`), familySlash},
	// 31.12.23, 10:30 - event text
	{regexp.MustCompile(`^(\d{1,2}\.\d{1,2}\.\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)\s*[-–]\s*(.*)$`), familyDotted},
}

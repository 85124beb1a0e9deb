package language

import (
	"path/filepath"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string   // ISO 639-1
	code3   string   // ISO 639-2/T
	alt3    string   // ISO 639-2/B when it differs
	display string   // English name
	words   []string // English and native word forms
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish", "español", "espanol", "castellano"}},
	{"fr", "fra", "fre", "French", []string{"french", "français", "francais"}},
	{"de", "deu", "ger", "German", []string{"german", "deutsch"}},
	{"it", "ita", "", "Italian", []string{"italian", "italiano"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese", "português", "portugues"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch", "nederlands"}},
	{"pl", "pol", "", "Polish", []string{"polish", "polski"}},
	{"sv", "swe", "", "Swedish", []string{"swedish", "svenska"}},
	{"da", "dan", "", "Danish", []string{"danish", "dansk"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian", "norsk"}},
	{"fi", "fin", "", "Finnish", []string{"finnish", "suomi"}},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// parseTag parses BCP 47 style input ("pt-BR", "zh_Hant") into a tag.
func parseTag(code string) (xlang.Tag, bool) {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return xlang.Und, false
	}
	tag, err := xlang.Parse(code)
	if err != nil || tag == xlang.Und {
		return xlang.Und, false
	}
	return tag, true
}

// ToISO2 converts a language code, BCP 47 tag, or language word to ISO 639-1.
// Returns empty string for unrecognized input and for languages without a
// two-letter code.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	tag, ok := parseTag(code)
	if !ok {
		return ""
	}
	base, conf := tag.Base()
	if conf == xlang.No {
		return ""
	}
	if iso := base.String(); len(iso) == 2 {
		return iso
	}
	return ""
}

// DisplayName returns the English name for a language code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	if tag, ok := parseTag(code); ok {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Label renders a code as "English (en)", or "unknown" when empty.
func Label(code string) string {
	iso := ToISO2(code)
	if iso == "" {
		if strings.TrimSpace(code) == "" {
			return "unknown"
		}
		return DisplayName(code)
	}
	return DisplayName(iso) + " (" + iso + ")"
}

// FromFileName guesses a caption track language from its file name using the
// usual "<title>.<lang>.srt" convention. Tokens are read right to left so
// flags like "forced" or "sdh" after the language are skipped. Returns empty
// string when nothing recognizable is found.
func FromFileName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		if i := strings.LastIndexAny(name, "_-"); i > 0 {
			if e := lookup(name[i+1:]); e != nil {
				return e.code2
			}
		}
		return ""
	}
	for i := len(parts) - 1; i >= 1; i-- {
		token := strings.TrimSpace(parts[i])
		if e := lookup(token); e != nil {
			return e.code2
		}
		if len(token) < 2 || len(token) > 8 {
			continue
		}
		// Region-qualified tags only; bare unknown tokens are too ambiguous.
		if strings.ContainsAny(token, "-_") {
			if iso := ToISO2(token); iso != "" {
				return iso
			}
		}
	}
	return ""
}

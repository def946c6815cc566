// internal/words/words.go
//
// Word list management for the Word Scramble server.
//
// Responsibilities:
//   - Load the root-word candidates and the dictionary word list from
//     configured files, or fall back to the embedded defaults in assets.
//   - Normalize lists (trimmed, lowercased, blanks and # comments dropped).
//
// Word Lists:
//   - "roots": candidate root words, one per line (typically 8 letters).
//   - "dictionary": words recognized by the default dictionary.
//
// Loading never fails: an unreadable file is logged and replaced by the
// embedded list, and an empty roots list is handled by Provider's fallback.

package words

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/assets"
)

// Lists holds the loaded word lists.
type Lists struct {
	Roots      []string
	Dictionary []string
}

// Load reads the roots and dictionary lists. Empty paths select the
// embedded defaults.
func Load(rootsPath, dictionaryPath string) Lists {
	return Lists{
		Roots:      loadOrEmbedded("roots", rootsPath, "roots.txt"),
		Dictionary: loadOrEmbedded("dictionary", dictionaryPath, "dictionary.txt"),
	}
}

func loadOrEmbedded(name, path, embeddedName string) []string {
	if path != "" {
		list, err := LoadList(path)
		if err == nil && len(list) > 0 {
			log.Info().Str("list", name).Str("path", path).Int("words", len(list)).Msg("loaded word list")
			return list
		}
		log.Warn().Err(err).Str("list", name).Str("path", path).Msg("word list unusable, using embedded default")
	}
	list, err := embeddedList(embeddedName)
	if err != nil {
		log.Warn().Err(err).Str("list", name).Msg("embedded word list unreadable")
		return nil
	}
	return list
}

// embeddedList reads one of the lists bundled in assets.FS.
func embeddedList(name string) ([]string, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}

// LoadList loads one word per line from a file.
func LoadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}

// ReadList reads newline-separated words, lowercasing and trimming each
// and skipping blank lines and # comments.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

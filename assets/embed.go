// assets/embed.go
//
// Embedded word lists shipped with the binary.
//   - answers.txt: words that can be chosen as the daily/practice secret.
//   - allowed.txt: extra words accepted as guesses but never chosen.
//
// Lines are trimmed and uppercased; blank lines and "#" comments are skipped.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadLines parses one word per line from r.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// AnswersList returns the embedded answer list in file order.
func AnswersList() ([]string, error) {
	return readEmbedded("answers.txt")
}

// AllowedList returns the embedded extra-guess list.
func AllowedList() ([]string, error) {
	return readEmbedded("allowed.txt")
}

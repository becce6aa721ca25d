package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed locales/*.txt
var FS embed.FS

// ReadLines returns the trimmed, non-blank, non-comment lines of name in fsys.
func ReadLines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

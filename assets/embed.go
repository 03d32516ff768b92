package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed banner.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// BannerLines returns the welcome banner, one entry per output line.
func BannerLines() ([]string, error) {
	return readLines("banner.txt")
}

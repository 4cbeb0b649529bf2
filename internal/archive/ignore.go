package archive

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// IgnoreFile is the optional per-directory exclusion list: one
// doublestar glob per line, # starts a comment. The file itself is
// packed with the rest of the tree.
const IgnoreFile = ".novaignore"

type ignoreRules []string

// loadIgnore reads root's IgnoreFile. A missing file yields no rules.
func loadIgnore(fsys afero.Fs, root string) (ignoreRules, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(root, IgnoreFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", IgnoreFile, err)
	}

	var rules ignoreRules
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf("%s: invalid pattern %q", IgnoreFile, line)
		}
		rules = append(rules, line)
	}
	return rules, sc.Err()
}

// Match reports whether the slash-separated relative path rel matches
// any rule.
func (r ignoreRules) Match(rel string) bool {
	for _, pat := range r {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

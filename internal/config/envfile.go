package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// UpdateEnvFile rewrites KEY=value lines in the .env file, appending keys
// that are not present yet. Unrelated lines are left untouched. The running
// process keeps its old values until restart.
func UpdateEnvFile(path string, updates map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	content := string(data)

	for key, value := range updates {
		line := key + "=" + value
		re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=.*$`)
		if re.MatchString(content) {
			content = re.ReplaceAllLiteralString(content, line)
			continue
		}
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += line + "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package content

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFrontmatter splits a Markdown file into its YAML frontmatter and body.
// Returns an empty Frontmatter and the whole input as body if no frontmatter is present.
func ParseFrontmatter(content []byte) (*Frontmatter, string, error) {
	// Check for frontmatter delimiters (---)
	var rest []byte
	switch {
	case bytes.HasPrefix(content, []byte("---\n")):
		rest = content[4:]
	case bytes.HasPrefix(content, []byte("---\r\n")):
		rest = content[5:]
	default:
		return &Frontmatter{}, string(content), nil
	}

	// Find closing delimiter
	scanner := bufio.NewScanner(bytes.NewReader(rest))
	var yamlLines []string
	var bodyLines []string
	closed := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if closed {
			bodyLines = append(bodyLines, line)
			continue
		}
		if line == "---" {
			closed = true
			continue
		}
		yamlLines = append(yamlLines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to scan frontmatter: %w", err)
	}
	if !closed {
		return nil, "", fmt.Errorf("frontmatter is not terminated")
	}

	rawFrontmatter := strings.Join(yamlLines, "\n")
	body := strings.TrimLeft(strings.Join(bodyLines, "\n"), "\n")

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rawFrontmatter), &fm); err == nil {
		return &fm, body, nil
	} else if !strings.Contains(err.Error(), "mapping key") {
		return nil, "", fmt.Errorf("failed to parse frontmatter YAML: %w", err)
	}

	// Duplicate top-level keys: keep the last occurrence, as most Markdown tooling does.
	sanitized := dedupeFrontmatter(rawFrontmatter)
	if sanitized == rawFrontmatter {
		return nil, "", fmt.Errorf("failed to parse frontmatter YAML: duplicate keys could not be resolved")
	}

	fm = Frontmatter{}
	if err := yaml.Unmarshal([]byte(sanitized), &fm); err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter YAML: %w", err)
	}

	return &fm, body, nil
}

// dedupeFrontmatter drops every top-level key block except the last one for each key.
func dedupeFrontmatter(raw string) string {
	lines := strings.Split(raw, "\n")

	type block struct {
		key   string
		start int
		end   int
	}

	var blocks []block
	for i, line := range lines {
		key, ok := topLevelKey(line)
		if !ok {
			if len(blocks) == 0 {
				blocks = append(blocks, block{start: i, end: i})
			} else {
				blocks[len(blocks)-1].end = i
			}
			continue
		}
		blocks = append(blocks, block{key: key, start: i, end: i})
	}

	if len(blocks) == 0 {
		return raw
	}

	lastBlock := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b.key != "" {
			lastBlock[b.key] = i
		}
	}

	var output []string
	for i, b := range blocks {
		if b.key != "" && lastBlock[b.key] != i {
			continue
		}
		output = append(output, lines[b.start:b.end+1]...)
	}

	return strings.Join(output, "\n")
}

func topLevelKey(line string) (string, bool) {
	if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return "", false
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
		return "", false
	}

	key, _, found := strings.Cut(trimmed, ":")
	if !found {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", false
	}
	return key, true
}

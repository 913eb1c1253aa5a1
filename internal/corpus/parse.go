package corpus

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"dharmaqa/internal/domain"
)

// minBlockLen filters out headings and page noise when splitting raw
// text into block records.
const minBlockLen = 30

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseStructured reads a structured verse file: blocks separated by
// "---" lines, each with a REF: line followed by SANSKRIT:, MEANING:
// and TAGS: sections. Blocks without both a ref and a meaning are
// dropped, not errors.
func ParseStructured(r io.Reader, book string) ([]domain.Record, error) {
	content, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	var verses []domain.Record
	for _, block := range strings.Split(string(content), "---") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		verse := domain.Record{Book: book}
		var sanskrit, meaning strings.Builder
		section := ""
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "REF:"):
				verse.Ref = strings.TrimSpace(strings.TrimPrefix(line, "REF:"))
			case line == "SANSKRIT:":
				section = "sanskrit"
			case line == "MEANING:":
				section = "meaning"
			case line == "TAGS:":
				section = "tags"
			default:
				switch section {
				case "sanskrit":
					sanskrit.WriteString(line + " ")
				case "meaning":
					meaning.WriteString(line + " ")
				case "tags":
					for _, t := range strings.Split(line, ",") {
						verse.Tags = append(verse.Tags, strings.TrimSpace(t))
					}
				}
			}
		}
		verse.Sanskrit = strings.TrimSpace(sanskrit.String())
		verse.Meaning = strings.TrimSpace(meaning.String())

		if verse.Ref != "" && verse.Meaning != "" {
			verses = append(verses, verse)
		}
	}
	return verses, nil
}

// SplitBlocks turns raw scripture text into one record per paragraph
// block. Blocks shorter than minBlockLen after whitespace normalization
// are discarded.
func SplitBlocks(text, book string) []domain.Record {
	var records []domain.Record
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(whitespaceRe.ReplaceAllString(block, " "))
		if len(block) < minBlockLen {
			continue
		}
		records = append(records, domain.Record{Book: book, Text: block})
	}
	return records
}

package dtree

import "strings"

// Resolve expands snippet references recursively and concatenates all
// elements left to right into one flat string. The result is passed
// to the shell verbatim; variable interpolation is the shell's job,
// through the exported environment.
func (it StringExpr) Resolve(snippets SnippetTable) (string, error) {
	return it.resolve(snippets, nil)
}

func (it StringExpr) resolve(snippets SnippetTable, parents []string) (string, error) {
	result := strings.Builder{}
	for _, elem := range it {
		if !elem.Ref {
			result.WriteString(elem.Text)
			continue
		}
		snippet, ok := snippets[elem.Text]
		if !ok {
			return "", modelError("", elem.Text, "undefined snippet: %s", elem.Text)
		}
		for _, parent := range parents {
			if parent == elem.Text {
				trail := strings.Join(append(parents, elem.Text), " -> ")
				return "", modelError("", elem.Text, "snippet cycle detected: %s", trail)
			}
		}
		chain := make([]string, 0, len(parents)+1)
		chain = append(chain, parents...)
		chain = append(chain, elem.Text)
		value, err := snippet.resolve(snippets, chain)
		if err != nil {
			return "", err
		}
		result.WriteString(value)
	}
	return result.String(), nil
}

package cerrgen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/cerrgen/i18n"
)

// LoadJSON decodes a JSON schema document and validates it. All structural
// violations found in the document are collected into a single Issues error;
// a Document is only returned when the issue list is empty.
func LoadJSON(b []byte, opt Options) (Document, error) {
	opt = opt.withDefaults()
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return Document{}, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return documentFromAny(root, opt.RootKey)
}

// LoadJSONReader reads the full input and delegates to LoadJSON.
func LoadJSONReader(r io.Reader, opt Options) (Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("cerrgen: read input: %w", err)
	}
	return LoadJSON(b, opt)
}

// LoadYAML decodes a YAML schema document with the same shape as the JSON
// form and validates it.
func LoadYAML(b []byte, opt Options) (Document, error) {
	opt = opt.withDefaults()
	var root any
	if err := yaml.Unmarshal(b, &root); err != nil {
		return Document{}, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return documentFromAny(root, opt.RootKey)
}

// LoadFile loads a schema document from disk, dispatching on the file
// extension (.yaml/.yml vs JSON).
func LoadFile(path string, opt Options) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("cerrgen: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(b, opt)
	default:
		return LoadJSON(b, opt)
	}
}

// documentFromAny walks the decoded document and maps it onto Document,
// collecting an Issue for every violation instead of stopping at the first.
func documentFromAny(root any, rootKey string) (Document, error) {
	m, ok := root.(map[string]any)
	if !ok {
		return Document{}, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)}}
	}
	listPath := "/" + rootKey
	v, ok := m[rootKey]
	if !ok {
		return Document{}, Issues{{Path: listPath, Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{"key": rootKey})}}
	}
	arr, ok := v.([]any)
	if !ok {
		return Document{}, Issues{{Path: listPath, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)}}
	}
	if len(arr) == 0 {
		return Document{}, Issues{{Path: listPath, Code: CodeEmptyDocument, Message: i18n.T(CodeEmptyDocument, nil)}}
	}

	var iss Issues
	doc := Document{Domains: make([]ErrorDomain, 0, len(arr))}
	for i, dv := range arr {
		path := listPath + "/" + strconv.Itoa(i)
		dm, ok := dv.(map[string]any)
		if !ok {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)})
			continue
		}
		var d ErrorDomain
		d.Description, iss = requireString(dm, "description", path, iss)
		d.Offset, iss = requireOffset(dm, path, iss)
		d.Members, iss = requireMembers(dm, path, iss)
		doc.Domains = append(doc.Domains, d)
	}
	if len(iss) > 0 {
		return Document{}, iss
	}
	return doc, nil
}

func requireString(m map[string]any, key, base string, iss Issues) (string, Issues) {
	path := base + "/" + key
	v, ok := m[key]
	if !ok {
		return "", AppendIssues(iss, Issue{Path: path, Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{"key": key})})
	}
	s, ok := v.(string)
	if !ok {
		return "", AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)})
	}
	return s, iss
}

// requireOffset accepts the offset either as an integer or as its textual
// form (the original documents carry strings like "-1124").
func requireOffset(m map[string]any, base string, iss Issues) (int, Issues) {
	path := base + "/offset"
	v, ok := m["offset"]
	if !ok {
		return 0, AppendIssues(iss, Issue{Path: path, Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{"key": "offset"})})
	}
	switch n := v.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, AppendIssues(iss, Issue{Path: path, Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err})
		}
		return i, iss
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, AppendIssues(iss, Issue{Path: path, Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err})
		}
		return i, iss
	case int:
		return n, iss
	case int64:
		return int(n), iss
	case uint64:
		return int(n), iss
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, AppendIssues(iss, Issue{Path: path, Code: CodeParseError, Message: i18n.T(CodeParseError, nil)})
		}
		return i, iss
	default:
		return 0, AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)})
	}
}

func requireMembers(m map[string]any, base string, iss Issues) ([]DomainMember, Issues) {
	path := base + "/members"
	v, ok := m["members"]
	if !ok {
		return nil, AppendIssues(iss, Issue{Path: path, Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{"key": "members"})})
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)})
	}
	members := make([]DomainMember, 0, len(arr))
	for j, mv := range arr {
		mpath := path + "/" + strconv.Itoa(j)
		mm, ok := mv.(map[string]any)
		if !ok {
			iss = AppendIssues(iss, Issue{Path: mpath, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)})
			continue
		}
		var mem DomainMember
		mem.Name, iss = requireString(mm, "name", mpath, iss)
		mem.Description, iss = requireString(mm, "description", mpath, iss)
		members = append(members, mem)
	}
	return members, iss
}

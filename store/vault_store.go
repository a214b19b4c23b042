package store

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"

	"github.com/noteleap/noteleap/models"
)

const markdownExt = ".md"

var (
	wikilinkRe = regexp.MustCompile(`\[\[([^\]|#]+)(?:[#|][^\]]*)?\]\]`)
	mdLinkRe   = regexp.MustCompile(`\]\(([^)\s]+\.md)\)`)
	inlineTag  = regexp.MustCompile(`(?:^|\s)#([\p{L}\d][\p{L}\d/_-]*)`)
)

// VaultStore reads documents from a folder of markdown files. Each call
// to Documents walks the vault and parses frontmatter, links, and tags
// fresh, so the engine always ranks current snapshots. The filesystem
// is abstracted behind afero so tests run against an in-memory fs.
type VaultStore struct {
	fs   afero.Fs
	root string
}

// NewVaultStore creates a vault store rooted at the given directory.
func NewVaultStore(fsys afero.Fs, root string) *VaultStore {
	return &VaultStore{fs: fsys, root: filepath.Clean(root)}
}

// Documents implements DocumentProvider.
func (s *VaultStore) Documents() ([]models.Document, error) {
	ids, err := s.listIDs()
	if err != nil {
		return nil, err
	}

	resolver := newLinkResolver(ids)
	docs := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.parse(id, resolver)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Document implements DocumentProvider.
func (s *VaultStore) Document(id string) (models.Document, bool, error) {
	ids, err := s.listIDs()
	if err != nil {
		return models.Document{}, false, err
	}
	found := false
	for _, known := range ids {
		if known == id {
			found = true
			break
		}
	}
	if !found {
		return models.Document{}, false, nil
	}
	doc, err := s.parse(id, newLinkResolver(ids))
	if err != nil {
		return models.Document{}, false, err
	}
	return doc, true, nil
}

// Close implements DocumentProvider. The vault store holds no resources.
func (s *VaultStore) Close() error {
	return nil
}

// listIDs walks the vault and returns the sorted vault-relative paths
// of every markdown file.
func (s *VaultStore) listIDs() ([]string, error) {
	var ids []string
	err := afero.Walk(s.fs, s.root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(p), markdownExt) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault %s: %w", s.root, err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *VaultStore) parse(id string, resolver *linkResolver) (models.Document, error) {
	raw, err := afero.ReadFile(s.fs, filepath.Join(s.root, filepath.FromSlash(id)))
	if err != nil {
		return models.Document{}, fmt.Errorf("read %s: %w", id, err)
	}

	front, body := splitFrontmatter(string(raw))
	meta, err := parseFrontmatter(front)
	if err != nil {
		return models.Document{}, fmt.Errorf("frontmatter of %s: %w", id, err)
	}

	doc := models.Document{
		ID:   id,
		Name: displayName(id, meta),
		Meta: meta,
		Tags: collectTags(meta, body),
	}
	for _, target := range rawLinks(body) {
		if resolved, ok := resolver.resolve(id, target); ok && resolved != id {
			doc.Links = append(doc.Links, resolved)
		}
	}
	return doc, nil
}

// splitFrontmatter separates a leading YAML frontmatter block from the
// markdown body. Content without a block yields an empty frontmatter.
func splitFrontmatter(content string) (front, body string) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return "", content
	}
	rest := content[strings.Index(content, "\n")+1:]
	for _, marker := range []string{"\n---\n", "\n---\r\n"} {
		if i := strings.Index(rest, marker); i >= 0 {
			return rest[:i], rest[i+len(marker):]
		}
	}
	if strings.HasSuffix(rest, "\n---") {
		return strings.TrimSuffix(rest, "\n---"), ""
	}
	return "", content
}

// parseFrontmatter decodes the YAML block into the metadata union.
// Scalars stay scalars, sequences of scalars become list values, and
// anything nested deeper is skipped.
func parseFrontmatter(front string) (models.Metadata, error) {
	if strings.TrimSpace(front) == "" {
		return nil, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(front), &raw); err != nil {
		return nil, err
	}
	meta := make(models.Metadata, len(raw))
	for key, val := range raw {
		switch v := val.(type) {
		case nil:
			meta[key] = models.String("")
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := scalarString(item); ok {
					items = append(items, s)
				}
			}
			meta[key] = models.Strings(items...)
		default:
			if s, ok := scalarString(v); ok {
				meta[key] = models.String(s)
			}
		}
	}
	return meta, nil
}

func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprintf("%v", s), true
	default:
		return "", false
	}
}

func displayName(id string, meta models.Metadata) string {
	if title, ok := meta["title"]; ok {
		if s, isScalar := title.Scalar(); isScalar && strings.TrimSpace(s) != "" {
			return s
		}
	}
	if aliases, ok := meta["aliases"]; ok {
		for _, alias := range aliases.List() {
			if strings.TrimSpace(alias) != "" {
				return alias
			}
		}
	}
	return strings.TrimSuffix(path.Base(id), markdownExt)
}

func collectTags(meta models.Metadata, body string) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	if v, ok := meta["tags"]; ok {
		for _, tag := range v.List() {
			add(tag)
		}
	}
	for _, m := range inlineTag.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	return tags
}

// rawLinks extracts wikilink and markdown link targets from the body,
// in appearance order.
func rawLinks(body string) []string {
	var targets []string
	for _, m := range wikilinkRe.FindAllStringSubmatch(body, -1) {
		targets = append(targets, strings.TrimSpace(m[1]))
	}
	for _, m := range mdLinkRe.FindAllStringSubmatch(body, -1) {
		targets = append(targets, strings.TrimSpace(m[1]))
	}
	return targets
}

// linkResolver maps link targets to vault-relative document IDs the way
// wiki-style links resolve: exact path first, then unique basename.
type linkResolver struct {
	paths  map[string]bool
	byName map[string][]string
}

func newLinkResolver(ids []string) *linkResolver {
	r := &linkResolver{
		paths:  make(map[string]bool, len(ids)),
		byName: make(map[string][]string),
	}
	for _, id := range ids {
		r.paths[id] = true
		name := strings.ToLower(strings.TrimSuffix(path.Base(id), markdownExt))
		r.byName[name] = append(r.byName[name], id)
	}
	return r
}

func (r *linkResolver) resolve(from, target string) (string, bool) {
	target = filepath.ToSlash(target)
	if !strings.EqualFold(path.Ext(target), markdownExt) {
		target += markdownExt
	}
	// Relative to the linking document.
	if rel := path.Join(path.Dir(from), target); r.paths[rel] {
		return rel, true
	}
	// Vault-absolute.
	if clean := path.Clean(strings.TrimPrefix(target, "/")); r.paths[clean] {
		return clean, true
	}
	// Basename lookup; ambiguous names resolve to the shortest path,
	// mirroring shortest-path-wins link resolution.
	name := strings.ToLower(strings.TrimSuffix(path.Base(target), markdownExt))
	candidates := r.byName[name]
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best, true
}

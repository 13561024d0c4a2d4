// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads LaTeX input from files, standard input, inline
// strings or URLs and decodes it to normalized UTF-8 text.
package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// Kind identifies where a source reference points.
type Kind string

const (
	KindFile   Kind = "file"
	KindStdin  Kind = "stdin"
	KindInline Kind = "inline"
	KindURL    Kind = "url"
)

// StdinRef is the reference that reads from standard input.
const StdinRef = "-"

// Source is one loaded input document.
type Source struct {
	// Ref is the reference as given: a path, "-", raw text or a URL.
	Ref  string
	Kind Kind
	// ID is a slug naming the document, derived from the file or URL name.
	ID string
	// Encoding names the byte encoding the content was decoded from.
	Encoding string
	// Content is the decoded, NFC-normalized text.
	Content string
}

// Fetcher downloads a URL.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Loader resolves references to Sources.
type Loader struct {
	fetcher Fetcher
	stdin   io.Reader
}

// NewLoader returns a Loader reading "-" from stdin and URLs through
// fetcher. A nil fetcher makes URL references an error.
func NewLoader(fetcher Fetcher, stdin io.Reader) *Loader {
	return &Loader{fetcher: fetcher, stdin: stdin}
}

// Classify decides how ref is loaded. Text containing a newline is raw
// LaTeX; anything else that is not "-" or an http(s) URL is a file path.
func Classify(ref string) Kind {
	switch {
	case ref == StdinRef:
		return KindStdin
	case strings.Contains(ref, "\n"):
		return KindInline
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return KindURL
	default:
		return KindFile
	}
}

// ID derives the document slug for ref without reading it.
func ID(ref string) string {
	var id string
	switch Classify(ref) {
	case KindStdin:
		id = "stdin"
	case KindInline:
		id = "inline"
	case KindURL:
		if u, err := url.Parse(ref); err == nil {
			id = Slug(strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path)))
		}
	case KindFile:
		id = Slug(strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)))
	}
	if id == "" {
		return "document"
	}
	return id
}

// Load reads and decodes the document ref points to.
func (l *Loader) Load(ctx context.Context, ref string) (Source, error) {
	src := Source{Ref: ref, Kind: Classify(ref), ID: ID(ref)}

	var (
		data []byte
		err  error
	)
	switch src.Kind {
	case KindStdin:
		if l.stdin == nil {
			return Source{}, fmt.Errorf("reading stdin: no input stream")
		}
		if data, err = io.ReadAll(l.stdin); err != nil {
			return Source{}, fmt.Errorf("reading stdin: %w", err)
		}
	case KindInline:
		data = []byte(ref)
	case KindURL:
		if l.fetcher == nil {
			return Source{}, fmt.Errorf("loading %s: URL inputs are not enabled", ref)
		}
		if data, err = l.fetcher.Get(ctx, ref); err != nil {
			return Source{}, err
		}
	case KindFile:
		if !IsTeX(ref) {
			return Source{}, fmt.Errorf("input file must have a .tex extension: %s", ref)
		}
		if data, err = os.ReadFile(ref); err != nil {
			return Source{}, fmt.Errorf("reading %s: %w", ref, err)
		}
	}

	src.Content, src.Encoding = Decode(data)
	return src, nil
}

// IsTeX reports whether path has a .tex extension, in any letter case.
func IsTeX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tex")
}

// Slug lowercases name and replaces every run of characters other than
// letters and digits with a single hyphen.
func Slug(name string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			hyphen = false
			continue
		}
		if !hyphen && b.Len() > 0 {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

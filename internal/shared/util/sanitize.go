package util

import (
	"errors"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFileNameBytes bounds the file-name part of a feed key.
const MaxFileNameBytes = 120

var (
	errInvalidFileName = errors.New("invalid file name")
	errInvalidFeedKey  = errors.New("invalid feed key")
)

// SanitizeFileName flattens path separators, drops control characters and rejects
// traversal patterns. Long names are truncated on a rune boundary.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errInvalidFileName
	}
	for len(s) > MaxFileNameBytes {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s, nil
}

// FeedKey builds <prefix>/<owner namespace>/<id>_<file name> for an uploaded feed.
func FeedKey(prefix, owner, id, fileName string) (string, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(id) == "" {
		return "", errInvalidFeedKey
	}
	name, err := SanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	return path.Join(prefix, OwnerNamespace(owner), id+"_"+name), nil
}

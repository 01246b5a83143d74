package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const namespace = "chiko-blog"

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SiteUUID identifies a site descriptor by locale and title.
func SiteUUID(lang, title string) uuid.UUID {
	return UUID(namespace + ":site:" + strings.ToLower(strings.TrimSpace(lang)) + ":" + strings.TrimSpace(title))
}

// ArticleUUID identifies a post by its slash separated path.
func ArticleUUID(path string) uuid.UUID {
	return UUID(namespace + ":article:" + strings.TrimPrefix(strings.TrimSpace(path), "/"))
}

package manifest

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceFileIdentity is the UUID namespace for schema file identities.
// It is derived from "xmlschemas/file-identity/v1" under the standard URL
// namespace, so the same bundle key and path always yield the same ID.
var NamespaceFileIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("xmlschemas/file-identity/v1"))

// FileID returns the deterministic UUID v5 of a file within a bundle.
//
// The input is "<bundleKey>/<path>" with the path normalized to forward
// slashes and a leading "./" removed. Unlike bundle keys, paths keep their
// case: two schema files may differ only in case.
//
// Examples:
//   - FileID("dita-1.2", "xsd1.2/base/xsd/basemap.xsd")
//   - FileID("dita-1.2", "./xsd1.2\\base\\xsd\\basemap.xsd") (same ID)
func FileID(bundleKey, path string) uuid.UUID {
	return uuid.NewSHA1(NamespaceFileIdentity, []byte(identityName(bundleKey, path)))
}

func identityName(bundleKey, path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.TrimPrefix(normalized, "./")
	return strings.ToLower(bundleKey) + "/" + normalized
}

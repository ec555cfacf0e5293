package topology

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// HashAlgorithm labels the digest pair used in the document: SHA-1 for
// arcs, SHA-256 for per-LOD feature lists.
const HashAlgorithm = "sha1/sha256"

const shortIDLen = 8

// ArcHash digests the string serialization of a quantized point
// sequence. Any change in quantized geometry changes the hash.
func ArcHash(points [][]int64) string {
	h := sha1.New()
	h.Write([]byte(joinQuantized(points)))
	return hex.EncodeToString(h.Sum(nil))
}

// ShortID is an advisory hash-prefix label. Collisions are tolerated,
// the arc index remains the canonical key.
func ShortID(hash string) string {
	if len(hash) < shortIDLen {
		return hash
	}
	return hash[:shortIDLen]
}

// LODHash digests the serialized feature list of one LOD. Downstream
// build and caching tooling uses it for change detection.
func LODHash(features []*Feature) (string, error) {
	data, err := json.Marshal(features)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func joinQuantized(points [][]int64) string {
	sb := strings.Builder{}
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.FormatInt(p[0], 10))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatInt(p[1], 10))
	}
	return sb.String()
}

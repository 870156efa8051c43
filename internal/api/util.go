package api

import (
	"encoding/json"
	"math/rand"
	"regexp"
	"strings"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/constants"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// generateJoinCode creates a short alphanumeric code for joining matches.
func generateJoinCode(rng *rand.Rand) string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rng.Intn(len(codeCharset))]
	}
	return string(b)
}

var joinCodeRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

func normalizeJoinCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// validateDeck enforces the deck-builder contract: exactly DeckSize card
// names, at most MaxCardCopies of any one card, every name present in
// the catalog. Returns the user-facing message for the first violation
// found, or "".
func validateDeck(deck []string, catalog *game.Catalog) string {
	if len(deck) != DeckSize {
		return constants.ErrDeckSizeInvalid
	}
	copies := make(map[string]int, len(deck))
	for _, name := range deck {
		if _, ok := catalog.ByName(name); !ok {
			return constants.ErrDeckUnknownCard
		}
		copies[name]++
		if copies[name] > MaxCardCopies {
			return constants.ErrDeckTooManyCopies
		}
	}
	return ""
}

// normalizeTimestamps recursively renames GORM timestamp keys from
// CamelCase (CreatedAt, UpdatedAt, DeletedAt) to snake_case so clients
// consistently receive snake_case timestamps.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		if val, ok := vv["CreatedAt"]; ok {
			vv["created_at"] = val
			delete(vv, "CreatedAt")
		}
		if val, ok := vv["UpdatedAt"]; ok {
			vv["updated_at"] = val
			delete(vv, "UpdatedAt")
		}
		if val, ok := vv["DeletedAt"]; ok {
			vv["deleted_at"] = val
			delete(vv, "DeletedAt")
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, decodes
// it back into an interface{} and normalizes timestamp keys. Used to
// produce API responses with consistent snake_case keys.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}

package freefire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The info API isn't consistent about the names of its fields, so each value
// is looked up by an ordered list of candidates and the first present one wins
var (
	levelFields     = []string{"AccountLevel", "level"}
	nameFields      = []string{"AccountName", "nickname"}
	avatarFields    = []string{"AccountAvatarId", "headPic"}
	bannerFields    = []string{"AccountBannerId", "bannerId"}
	pinFields       = []string{"pinId", "title"}
	guildNameFields = []string{"GuildName", "clanName"}
)

const (
	accountInfoKey = "AccountInfo"
	guildInfoKey   = "GuildInfo"
)

type Account struct {
	// Level is nil when the API didn't report a usable value
	Level     *int
	Name      string
	GuildName string
	AvatarId  string
	BannerId  string
	PinId     string
}

func ParseAccount(body []byte) (*Account, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var root map[string]any
	if err := decoder.Decode(&root); err != nil {
		return nil, err
	}

	if root == nil {
		return nil, errors.New("the response body must be a json object")
	}

	account := root
	if nested, ok := root[accountInfoKey]; ok {
		account, _ = nested.(map[string]any)
	}

	guild, _ := root[guildInfoKey].(map[string]any)

	result := &Account{
		Name:      stringField(account, nameFields),
		GuildName: stringField(guild, guildNameFields),
		AvatarId:  stringField(account, avatarFields),
		BannerId:  stringField(account, bannerFields),
		PinId:     stringField(account, pinFields),
	}

	if value, ok := lookup(account, levelFields); ok {
		result.Level = toInt(value)
	}

	return result, nil
}

func lookup(object map[string]any, candidates []string) (any, bool) {
	for _, key := range candidates {
		if value, ok := object[key]; ok && isPresent(value) {
			return value, true
		}
	}

	return nil, false
}

func stringField(object map[string]any, candidates []string) string {
	value, ok := lookup(object, candidates)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// isPresent mimics the truthiness of loosely typed JSON values:
// null, empty strings, zeros, false and empty containers don't count
func isPresent(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case bool:
		return v
	case map[string]any:
		return len(v) != 0
	case []any:
		return len(v) != 0
	}

	return true
}

func toInt(value any) *int {
	var result int
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			result = int(i)
			break
		}

		f, err := v.Float64()
		if err != nil || f != math.Trunc(f) {
			return nil
		}

		result = int(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}

		result = i
	default:
		return nil
	}

	return &result
}

package banner

import "strings"

const (
	placeholderName  = "Player Not Found"
	placeholderLevel = "?"
	placeholderGuild = "No Guild"
)

// Data is everything the Compositor draws. Empty fields are replaced with placeholders.
type Data struct {
	Name  string
	Level string
	Guild string

	Avatar []byte
	Banner []byte
	Pin    []byte
}

func (d *Data) nameLine() string {
	return orDefault(d.Name, placeholderName)
}

func (d *Data) levelLine() string {
	return "Level: " + orDefault(d.Level, placeholderLevel)
}

func (d *Data) guildLine() string {
	return "Guild: " + orDefault(d.Guild, placeholderGuild)
}

func orDefault(value string, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
}

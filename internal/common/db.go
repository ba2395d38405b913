package common

import (
	"github.com/urfave/cli/v2"

	"github.com/agentpress/agentpress/pkg/db"
)

// OpenDatabase opens the content store at the --db path, or next to the
// binary when the flag is empty.
func OpenDatabase(c *cli.Context) (*db.DB, error) {
	if path := c.String("db"); path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}

package migrations

import "embed"

// FS embeds the SQL migrations of the advertisers and news tables. The
// golang-migrate library will read these files via the iofs driver when
// applying migrations.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version uint = 1

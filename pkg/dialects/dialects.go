// Package dialects registers every built-in dialect. Import it for its side
// effects when all dialects should be available:
//
//	import _ "github.com/schemalens/schemalens/pkg/dialects"
//
// Programs that only need one dialect can blank-import its package directly.
package dialects

import (
	_ "github.com/schemalens/schemalens/pkg/dialects/mssql"
	_ "github.com/schemalens/schemalens/pkg/dialects/mysql"
	_ "github.com/schemalens/schemalens/pkg/dialects/oracle"
	_ "github.com/schemalens/schemalens/pkg/dialects/postgres"
	_ "github.com/schemalens/schemalens/pkg/dialects/sqlite"
	_ "github.com/schemalens/schemalens/pkg/dialects/standard"
)

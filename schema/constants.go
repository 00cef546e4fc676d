package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history tracking.
	DatabaseBackend string

	// Dimension represents the key a roster is grouped by.
	Dimension string

	// ViewKind represents the layout family of a report view.
	ViewKind string

	// RosterSelector picks which roster a view command operates on.
	RosterSelector string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default for view commands
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx" // default for report
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All grouping dimensions supported.
const (
	ByLeader      Dimension = "leader"
	ByRole        Dimension = "role"
	DimensionNone Dimension = "none"
)

// All view kinds supported.
const (
	RankedView     ViewKind = "ranked"
	StatsView      ViewKind = "stats"
	ComparisonView ViewKind = "comparison"
)

// All roster selectors supported.
const (
	HomeRoster RosterSelector = "home" // default
	AwayRoster RosterSelector = "away"
	BothRoster RosterSelector = "both"
)

// Default roster labels, matching the sheet name prefixes.
const (
	DefaultHomeName = "本帮"
	DefaultAwayName = "敌帮"
)

// Sheet names of the match workbook, in workbook order.
const (
	SheetHomeLeaderRanking = "本帮团长排序"
	SheetHomeRoleRanking   = "本帮职业排序"
	SheetAwayLeaderRanking = "敌帮团长排序"
	SheetAwayRoleRanking   = "敌帮职业排序"
	SheetCombinedRoles     = "综合职业排序"
	SheetHomeRoleStats     = "本帮职业统计"
	SheetHomeLeaderStats   = "本帮团长统计"
	SheetAwayRoleStats     = "敌帮职业统计"
	SheetAwayLeaderStats   = "敌帮团长统计"
	SheetComparison        = "帮会对比"
)

// View names used when both rosters are combined outside the workbook.
const (
	SheetCombinedLeaders     = "综合团长排序"
	SheetCombinedRoleStats   = "综合职业统计"
	SheetCombinedLeaderStats = "综合团长统计"
	SheetTopPlayers          = "综合输出排行"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidDimensions lists the dimensions a user may group by.
var ValidDimensions = map[Dimension]struct{}{
	ByLeader: {},
	ByRole:   {},
}

// ValidRosterSelectors lists all valid roster selectors.
var ValidRosterSelectors = map[RosterSelector]struct{}{
	HomeRoster: {},
	AwayRoster: {},
	BothRoster: {},
}

// RosterSheets names the per-roster views of the match workbook.
type RosterSheets struct {
	LeaderRanking string
	RoleRanking   string
	RoleStats     string
	LeaderStats   string
}

// Ranking returns the name of the ranked view grouped by dim.
func (s RosterSheets) Ranking(dim Dimension) string {
	if dim == ByLeader {
		return s.LeaderRanking
	}
	return s.RoleRanking
}

// Stats returns the name of the statistics view grouped by dim.
func (s RosterSheets) Stats(dim Dimension) string {
	if dim == ByLeader {
		return s.LeaderStats
	}
	return s.RoleStats
}

// Sheet names of the roster listed first, the roster listed second, and both combined.
var (
	HomeSheets = RosterSheets{
		LeaderRanking: SheetHomeLeaderRanking,
		RoleRanking:   SheetHomeRoleRanking,
		RoleStats:     SheetHomeRoleStats,
		LeaderStats:   SheetHomeLeaderStats,
	}
	AwaySheets = RosterSheets{
		LeaderRanking: SheetAwayLeaderRanking,
		RoleRanking:   SheetAwayRoleRanking,
		RoleStats:     SheetAwayRoleStats,
		LeaderStats:   SheetAwayLeaderStats,
	}
	CombinedSheets = RosterSheets{
		LeaderRanking: SheetCombinedLeaders,
		RoleRanking:   SheetCombinedRoles,
		RoleStats:     SheetCombinedRoleStats,
		LeaderStats:   SheetCombinedLeaderStats,
	}
)

// SheetsFor returns the view names of the roster picked by sel.
func SheetsFor(sel RosterSelector) RosterSheets {
	switch sel {
	case AwayRoster:
		return AwaySheets
	case BothRoster:
		return CombinedSheets
	default:
		return HomeSheets
	}
}

package schema

// Custom string types for type safety.
type (
	// ChartKind selects the bucketing rule and chart shape for a request.
	ChartKind string

	// ChartShape represents the geometric shape of a rendered chart.
	ChartShape string

	// OutputMode represents the format of the data command output.
	OutputMode string

	// DateFormat selects the git date format for commit date queries.
	DateFormat string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All chart kinds supported.
const (
	AuthorsChart         ChartKind = "authors"
	TicketsByAuthorChart ChartKind = "tickets_by_author"
	CommitsByHourOfDay   ChartKind = "commits_by_hour_of_day"
	CommitsByHourOfWeek  ChartKind = "commits_by_hour_of_week"
	CommitsByDay         ChartKind = "commits_by_day"
	CommitsByDayOfWeek   ChartKind = "commits_by_day_of_week"
	CommitsByMonthOfYear ChartKind = "commits_by_month_of_year"
	CommitsByYear        ChartKind = "commits_by_year"
	CommitsByYearMonth   ChartKind = "commits_by_year_month"
	CommitsByVersion     ChartKind = "commits_by_version"
	FilesByType          ChartKind = "files_by_type"
)

// All chart shapes supported.
const (
	BarShape ChartShape = "bar"
	PieShape ChartShape = "pie"
	DotShape ChartShape = "dot"
)

// All output modes supported by the data command.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Git date formats used by commit date queries.
const (
	ISODate   DateFormat = "iso"   // 2013-03-15 18:27:55 +0100
	RFCDate   DateFormat = "rfc"   // Fri, 15 Mar 2013 18:27:55 +0100
	ShortDate DateFormat = "short" // 2013-03-15
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// NoExtensionKey buckets files without an extension for files_by_type.
const NoExtensionKey = "(no extension)"

// AllChartKinds returns every supported chart kind in display order.
var AllChartKinds = []ChartKind{
	AuthorsChart,
	TicketsByAuthorChart,
	CommitsByHourOfDay,
	CommitsByHourOfWeek,
	CommitsByDay,
	CommitsByDayOfWeek,
	CommitsByMonthOfYear,
	CommitsByYear,
	CommitsByYearMonth,
	CommitsByVersion,
	FilesByType,
}

// ValidChartKinds lists all valid chart kinds.
var ValidChartKinds = map[ChartKind]struct{}{
	AuthorsChart:         {},
	TicketsByAuthorChart: {},
	CommitsByHourOfDay:   {},
	CommitsByHourOfWeek:  {},
	CommitsByDay:         {},
	CommitsByDayOfWeek:   {},
	CommitsByMonthOfYear: {},
	CommitsByYear:        {},
	CommitsByYearMonth:   {},
	CommitsByVersion:     {},
	FilesByType:          {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Weekdays holds weekday names in calendar order, Monday first.
// Day-of-week charts list keys in this order, never alphabetically.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Months holds month names in calendar order.
var Months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// chartTitles maps each kind to its default chart title.
var chartTitles = map[ChartKind]string{
	AuthorsChart:         "Authors",
	TicketsByAuthorChart: "Tickets processed by author",
	CommitsByHourOfDay:   "Commits by hour of day",
	CommitsByHourOfWeek:  "Commits by hour of week",
	CommitsByDay:         "Commits by day",
	CommitsByDayOfWeek:   "Commits by day of week",
	CommitsByMonthOfYear: "Commits by month of year",
	CommitsByYear:        "Commits by year",
	CommitsByYearMonth:   "Commits by year/month",
	CommitsByVersion:     "Commits by version",
	FilesByType:          "Files by extension",
}

// chartShapes maps each kind to its chart shape.
var chartShapes = map[ChartKind]ChartShape{
	AuthorsChart:         PieShape,
	TicketsByAuthorChart: PieShape,
	CommitsByHourOfDay:   BarShape,
	CommitsByHourOfWeek:  DotShape,
	CommitsByDay:         BarShape,
	CommitsByDayOfWeek:   BarShape,
	CommitsByMonthOfYear: BarShape,
	CommitsByYear:        BarShape,
	CommitsByYearMonth:   BarShape,
	CommitsByVersion:     BarShape,
	FilesByType:          PieShape,
}

// DefaultTitle returns the default chart title for a kind.
func (k ChartKind) DefaultTitle() string {
	return chartTitles[k]
}

// Shape returns the chart shape used to render a kind.
func (k ChartKind) Shape() ChartShape {
	return chartShapes[k]
}

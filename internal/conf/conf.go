package conf

import (
	"errors"
	"fmt"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/internal/utils"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
)

// Environment keys recognised by Load
const (
	FileKey      = "COURSEINDEX_FILE"
	HashSizeKey  = "COURSEINDEX_HASH_SIZE"
	DBDriverKey  = "COURSEINDEX_DB_DRIVER"
	DBDSNKey     = "COURSEINDEX_DB_DSN"
	OutputKey    = "COURSEINDEX_OUTPUT"
	CacheSizeKey = "COURSEINDEX_CACHE_SIZE"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// DefaultCacheSize - Number of professor profiles kept in the lookup cache unless configured otherwise
const DefaultCacheSize int64 = 1000

// Config - Resolved runtime configuration
//   - FilePath is the CSV file to load courses from, empty if courses come from a database
//   - HashSize is the table size of both hash tables
//   - DBDriver and DBDSN select a database to load courses from, DSN empty if courses come from a file
//   - Output is either OutputTable or OutputJSON
//   - CacheSize is the professor lookup cache capacity, 0 disables the cache
type Config struct {
	FilePath  string
	HashSize  int64
	DBDriver  string
	DBDSN     string
	Output    string
	CacheSize int64
}

// Load - Resolves configuration from, in increasing priority, defaults, the env file, the process environment
// and positional arguments.
//   - envFile is the path to a dotenv file, a missing file is ignored
//   - args are the positional arguments <file path> <hash size>, either may be omitted from the end
//
// It returns:
//   - config is the resolved Config
//   - err is either of type crt.ConfigError or a standard error if the env file could not be parsed
func Load(envFile string, args []string) (config Config, err error) {
	values := map[string]string{
		DBDriverKey:  "sqlite3",
		OutputKey:    OutputTable,
		CacheSizeKey: fmt.Sprint(DefaultCacheSize),
	}

	fileValues, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("error while reading env file %s: %w", envFile, err)
		return
	}
	err = nil
	for k, v := range fileValues {
		values[k] = v
	}

	for _, k := range []string{FileKey, HashSizeKey, DBDriverKey, DBDSNKey, OutputKey, CacheSizeKey} {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}

	if len(args) > 0 {
		values[FileKey] = args[0]
	}
	if len(args) > 1 {
		values[HashSizeKey] = args[1]
	}

	config = Config{
		FilePath: values[FileKey],
		DBDriver: values[DBDriverKey],
		DBDSN:    values[DBDSNKey],
		Output:   values[OutputKey],
	}

	config.HashSize, err = utils.ParsePositive(values[HashSizeKey])
	if err != nil {
		err = crt.NewConfigError(fmt.Sprintf("hash size: %s", err))
		return
	}

	config.CacheSize, err = utils.ParseNonNegative(values[CacheSizeKey])
	if err != nil {
		err = crt.NewConfigError(fmt.Sprintf("cache size: %s", err))
		return
	}

	if config.FilePath == "" && config.DBDSN == "" {
		err = crt.NewConfigError("either a course file or a database DSN must be given")
		return
	}

	if config.Output != OutputTable && config.Output != OutputJSON {
		err = crt.NewConfigError(fmt.Sprintf("output format %q is neither %s nor %s", config.Output, OutputTable, OutputJSON))
		return
	}

	return
}

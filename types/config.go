package types

import (
	errs "errors"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ListenAddr     string
	DBDriver       string
	DBPath         string
	DatabaseURL    string
	LogLevel       logrus.Level
	LogFile        string
	MetricsEnabled bool
}

func ConfigFromEnv() (Config, error) {
	ret := Config{}
	var retErr error
	var err error

	ret.ListenAddr = goli.DefaultEnv("NOTES_LISTEN_ADDR", ":8080")
	ret.LogFile = os.Getenv("NOTES_LOG_FILE")

	ret.LogLevel, err = logrus.ParseLevel(goli.DefaultEnv("NOTES_LOG_LEVEL", "info"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing NOTES_LOG_LEVEL"))
	}

	ret.MetricsEnabled, err = strconv.ParseBool(goli.DefaultEnv("NOTES_METRICS", "true"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing NOTES_METRICS"))
	}

	ret.DBDriver = goli.DefaultEnv("NOTES_DB_DRIVER", DriverSQLite)
	switch ret.DBDriver {
	case DriverSQLite:
		var ok bool
		ret.DBPath, ok = os.LookupEnv("NOTES_DB_PATH")
		if !ok || ret.DBPath == "" {
			retErr = errs.Join(retErr, fmt.Errorf("You must define env NOTES_DB_PATH"))
		} else if _, err := os.Stat(path.Dir(ret.DBPath)); err != nil {
			retErr = errs.Join(retErr, errors.Wrap(err, "Directory for NOTES_DB_PATH must exist"))
		}
	case DriverPostgres:
		ret.DatabaseURL = os.Getenv("NOTES_DATABASE_URL")
		if ret.DatabaseURL == "" {
			retErr = errs.Join(retErr, fmt.Errorf("You must define env NOTES_DATABASE_URL when NOTES_DB_DRIVER=postgres"))
		}
	default:
		retErr = errs.Join(retErr, fmt.Errorf("unknown NOTES_DB_DRIVER %q", ret.DBDriver))
	}

	return ret, retErr
}

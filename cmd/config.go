package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "wirefuzz"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	seedFlagName          = "seed"
	maxSizeFlagName       = "max-size"
	crashDirFlagName      = "crash-dir"
	verboseFlagName       = "verbose"
	threadsFlagName       = "threads"
	iterationsFlagName    = "iterations"
	threadTimeoutFlagName = "thread-timeout"
	targetFlagName        = "target"
	networkFlagName       = "network"
	tuiFlagName           = "tui"
	countFlagName         = "count"
	startFlagName         = "start"
	endFlagName           = "end"
	crashFlagName         = "crash"
	sendFlagName          = "send"

	seedConfigKey          = "fuzz.seed"
	maxSizeConfigKey       = "fuzz.max_size"
	threadsConfigKey       = "fuzz.threads"
	iterationsConfigKey    = "fuzz.iterations"
	threadTimeoutConfigKey = "fuzz.thread_timeout"
	targetAddressKey       = "target.address"
	targetNetworkKey       = "target.network"
	targetTimeoutKey       = "target.timeout"
	crashDirConfigKey      = "crash.dir"

	defaultSeed          = 0
	defaultMaxSize       = 4096
	defaultThreads       = 1
	defaultIterations    = 0
	defaultThreadTimeout = 10 * time.Second
	defaultTargetNetwork = "tcp"
	defaultTargetTimeout = 5 * time.Second
	defaultCrashDir      = ".wirefuzz-crashes"

	envPrefix = "WIREFUZZ"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".wirefuzz.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(maxSizeConfigKey, defaultMaxSize)
	viper.SetDefault(threadsConfigKey, defaultThreads)
	viper.SetDefault(iterationsConfigKey, defaultIterations)
	viper.SetDefault(threadTimeoutConfigKey, int64(defaultThreadTimeout.Seconds()))
	viper.SetDefault(targetAddressKey, "")
	viper.SetDefault(targetNetworkKey, defaultTargetNetwork)
	viper.SetDefault(targetTimeoutKey, int64(defaultTargetTimeout.Seconds()))
	viper.SetDefault(crashDirConfigKey, defaultCrashDir)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Config file not loaded", "error", err)
		}
	}
}

// secondsKey reads a config key holding a number of seconds.
func secondsKey(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// numeric slog levels, e.g. -4 for debug
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file.
// It logs at the configured level, or at Debug when verbose is set.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

package log

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/go-logr/zapr"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog/v2"

	"github.com/selebrow/dbquota/pkg/config"
	"github.com/selebrow/dbquota/pkg/kubeapi"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"
)

var (
	SetupLogger  = NewConsoleLogger
	inKubernetes = kubeapi.InKubernetes

	once   sync.Once
	logger *zap.Logger
)

func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = SetupLogger()
		// client-go leader election logs through klog
		klog.SetLogger(zapr.NewLogger(logger.Named("klog")))
	})
	return logger
}

// EnvVar returns name of the logging related environment variable, e.g. EnvVar("LEVEL") -> DQ_LOG_LEVEL.
func EnvVar(name string) string {
	return fmt.Sprintf("%s_LOG_%s", config.ConfigPrefix, name)
}

func NewConsoleLogger() *zap.Logger {
	zc := zap.NewProductionConfig()
	lvl := getLogLevel()
	var opts []zap.Option
	if lvl >= zap.InfoLevel {
		zc.DisableStacktrace = true
		zc.DisableCaller = true
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	output := os.Getenv(EnvVar("OUTPUT"))
	if output != "" {
		zc.OutputPaths = []string{output}
	}

	// Auto-switch to json logs when running in k8s
	if inKubernetes() || strings.ToLower(os.Getenv(EnvVar("FORMAT"))) == encodingJSON {
		zc.Encoding = encodingJSON
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		zc.EncoderConfig.TimeKey = "@timestamp"
		zc.EncoderConfig.MessageKey = "message"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		zc.Encoding = encodingConsole
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		if output == "" {
			// Add color when debugging locally
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			// Workaround for Windows terminal color output
			if runtime.GOOS == "windows" {
				opts = append(opts, zap.WrapCore(func(_ zapcore.Core) zapcore.Core {
					return zapcore.NewCore(
						zapcore.NewConsoleEncoder(zc.EncoderConfig),
						zapcore.AddSync(colorable.NewColorableStdout()),
						lvl,
					)
				}))
			}
		}
	}

	z, err := zc.Build(opts...)
	if err != nil {
		panic(err)
	}

	return z
}

func getLogLevel() zapcore.Level {
	strLevel := os.Getenv(EnvVar("LEVEL"))
	return config.ZapLogLevel(strLevel, zap.InfoLevel)
}

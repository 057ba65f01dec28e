package logging

import (
	"errors"
	"io"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns a logger for one rp run. With debug set it writes
// human-readable development output to w; otherwise it discards everything,
// keeping the diagnostic stream reserved for rp's own messages.
func New(debug bool, w io.Writer, appName, appVersion string) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(w),
		cfg.Level,
	)

	return zap.New(core, zap.AddCaller(), zap.Fields(
		zap.String("appName", appName),
		zap.String("appVersion", appVersion),
	))
}

// Sync flushes logger. Sync is only attempted when w is a terminal or a
// regular file; pipes and character devices reject fsync with EINVAL or
// ENOTTY, which is not worth reporting.
func Sync(logger *zap.Logger, w io.Writer) error {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) && !isRegularFile(f) {
		return nil
	}

	err := logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

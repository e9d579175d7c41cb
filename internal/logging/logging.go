package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug output.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger based on the debug flag and configuration.
// Returns the path of the log file in use, or "" when logging is disabled.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	// Check environment variables for inherited debug settings
	if os.Getenv("GIT_PR_DEBUG") == "1" {
		debug = true
	}
	if envDebugFile := os.Getenv("GIT_PR_DEBUG_FILE"); envDebugFile != "" && debugFile == "" {
		debugFile = envDebugFile
	}
	if envMaxLogFiles := os.Getenv("GIT_PR_MAX_LOG_FILES"); envMaxLogFiles != "" && maxLogFiles == DefaultMaxLogFiles {
		// Only override if not explicitly set
		if parsed, err := strconv.Atoi(envMaxLogFiles); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	var logFilePath string

	if debugFile != "" {
		// Custom debug file path (no rotation)
		logFilePath = debugFile

		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
	} else {
		logDir, err := getLogDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}

		if err := os.MkdirAll(logDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}

		if maxLogFiles > 0 {
			if err := rotateLogs(logDir, maxLogFiles); err != nil {
				// Log rotation failure shouldn't prevent logging
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}

		logFileName := fmt.Sprintf("%s.log", uuid.New().String())
		logFilePath = filepath.Join(logDir, logFileName)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	Logger = slog.New(slog.NewJSONHandler(logFile, opts))
	Logger.Info("Debug logging initialized", "log_file", logFilePath)

	return logFilePath, nil
}

// rotateLogs removes old log files if there are more than maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	// Oldest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1 // +1 to make room for the new log
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Logs/git-pr
		return filepath.Join(homeDir, "Library", "Logs", "git-pr"), nil
	case "linux":
		// Linux: ~/.local/state/git-pr or XDG_STATE_HOME
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "git-pr"), nil
	case "windows":
		// Windows: %LOCALAPPDATA%\git-pr\logs
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "git-pr", "logs"), nil
	default:
		return filepath.Join(homeDir, ".git-pr", "logs"), nil
	}
}

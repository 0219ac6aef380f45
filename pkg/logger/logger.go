package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	InfoLog  *log.Logger
	ErrorLog *log.Logger
	WarnLog  *log.Logger
	logFile  *os.File

	mu    sync.Mutex
	quiet bool
)

// InitLogger mirrors console output into filename.
func InitLogger(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logFile = f
	setup()
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	setup()
}

// SetQuiet discards info and warning output. Errors are always written.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
	setup()
}

// Quiet reports whether info and warning output is discarded.
func Quiet() bool {
	mu.Lock()
	defer mu.Unlock()
	return quiet
}

func setup() {
	var out, errOut io.Writer = os.Stdout, os.Stderr
	if logFile != nil {
		out = io.MultiWriter(os.Stdout, logFile)
		errOut = io.MultiWriter(os.Stderr, logFile)
	}
	if quiet {
		out = io.Discard
	}

	InfoLog = log.New(out, "INFO: ", log.Ldate|log.Ltime)
	WarnLog = log.New(out, "WARN: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(errOut, "ERROR: ", log.Ldate|log.Ltime)
}

func ensure() {
	mu.Lock()
	defer mu.Unlock()
	if InfoLog == nil {
		setup()
	}
}

func Info(format string, v ...interface{}) {
	ensure()
	InfoLog.Printf(format, v...)
}

func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

func Error(format string, v ...interface{}) {
	ensure()
	ErrorLog.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	ensure()
	WarnLog.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}

package obs

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

var (
	logInit sync.Once
	std     *log.Logger
)

// Logger returns the process-wide logger. Every line it writes is expected
// to be a single JSON object.
func Logger() *log.Logger {
	logInit.Do(func() {
		std = log.New(os.Stdout, "", 0)
	})
	return std
}

// LogEntry serializes entry and writes it as one log line.
func LogEntry(entry map[string]any) {
	line, err := json.Marshal(entry)
	if err != nil {
		Logger().Printf(`{"level":"error","msg":"unloggable entry","error":%q}`, err.Error())
		return
	}
	Logger().Println(string(line))
}

package msg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var (
	mu       sync.RWMutex
	messages = make(map[string]string)
)

// init loads messages from YAML. Without a catalogue GetMessage falls back to the key itself.
func init() {
	var value, ok = os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	if err := Init(value); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Fail to read messages: %v", err)
	}
}

// Init merges the messages of the given YAML file into the catalogue.
func Init(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", filepath, err)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, key := range v.AllKeys() {
		messages[key] = v.GetString(key)
	}
	return nil
}

// GetMessage resolves key and substitutes {0}, {1}... with args. Unknown keys are returned as is.
func GetMessage(key string, args ...any) string {
	mu.RLock()
	template, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return key
	}
	if len(args) == 0 {
		return template
	}

	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", formatArg(arg))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// formatArg renders scalars plainly and anything else as JSON.
func formatArg(arg any) string {
	switch v := arg.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	if s, err := cast.ToStringE(arg); err == nil {
		return s
	}
	if b, err := json.Marshal(arg); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", arg)
}

package keyboard

import (
	"fmt"
	"strings"
)

// ActionCommand callbacks replay a bot command, e.g. "cmd:retry".
const ActionCommand = "cmd"

const (
	CommandStart  = "start"
	CommandHelp   = "help"
	CommandPlan   = "plan"
	CommandRetry  = "retry"
	CommandImages = "images"
	CommandVoice  = "voice"
	CommandCancel = "cancel"
)

// CallbackData represents parsed callback data
type CallbackData struct {
	Action string
	Value  string
}

// ParseCallback parses callback data string
func ParseCallback(data string) (*CallbackData, error) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid callback format: %s", data)
	}

	return &CallbackData{
		Action: parts[0],
		Value:  parts[1],
	}, nil
}

// EncodeCallback creates callback data string
func EncodeCallback(action, value string) string {
	return fmt.Sprintf("%s:%s", action, value)
}

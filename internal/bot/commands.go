package bot

import "strings"

// parseCommand splits "/download@SomeBot My file.txt" into ("download",
// "My file.txt"). The argument is everything after the single separator
// space, so filenames keep interior and trailing whitespace exactly.
// Returns an empty command for non-command text.
func parseCommand(text string) (command, arg string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}

	rest := text[1:]
	command = rest
	if i := strings.Index(rest, " "); i >= 0 {
		command, arg = rest[:i], rest[i+1:]
	}

	// Group chats address commands as /cmd@BotName.
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	return command, arg
}

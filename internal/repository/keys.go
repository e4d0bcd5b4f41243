package repository

import "fmt"

const keyPrefix = "tictactoe"

func matchKey(id string) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// recentMatchesKey - list of match ids, most recent first.
func recentMatchesKey() string {
	return keyPrefix + ":matches"
}

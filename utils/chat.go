package utils

import "fmt"

// ThreadID derives the chat thread id for an unordered pair of user
// ids. The lower id always comes first, so both participants resolve
// the same thread without a lookup query.
func ThreadID(a, b uint) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("chat-%d-%d", a, b)
}

package service

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"wuddevdet/internal/config"
)

// IDGenerator hands out identifiers for new board entries. PostID receives
// the number of posts currently on the board.
type IDGenerator interface {
	PostID(count int) string
	CommentID() string
	MessageID() string
}

func NewIDGenerator(strategy string) IDGenerator {
	if strategy == config.IDStrategyLegacy {
		return legacyIDs{}
	}
	return uniqueIDs{}
}

type uniqueIDs struct{}

func (uniqueIDs) PostID(int) string { return uuid.New().String() }
func (uniqueIDs) CommentID() string { return xid.New().String() }
func (uniqueIDs) MessageID() string { return xid.New().String() }

// legacyIDs reproduces the board's historical scheme: post IDs count up from
// the collection size and can repeat after a delete.
type legacyIDs struct{}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (legacyIDs) PostID(count int) string { return strconv.Itoa(count + 1) }
func (legacyIDs) CommentID() string       { return "c" + randomBase36(9) }
func (legacyIDs) MessageID() string       { return "g" + randomBase36(9) }

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}

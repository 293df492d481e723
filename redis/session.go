package redis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Server-side session records. A JWT alone cannot be revoked; logout must
// actually end the session, so each token carries a session id whose record
// lives here and is checked on every gated request.

var ErrSessionNotFound = errors.New("session not found or expired")

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// SaveSession records an authenticated identity under the session id.
func SaveSession(sessionID string, userID uint, role string, ttl time.Duration) error {
	value := fmt.Sprintf("%d:%s", userID, role)
	return Client.Set(Ctx, sessionKey(sessionID), value, ttl).Err()
}

// GetSession resolves a session id back to the identity it was issued for.
func GetSession(sessionID string) (uint, string, error) {
	value, err := Client.Get(Ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return 0, "", ErrSessionNotFound
	}

	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, "", ErrSessionNotFound
	}
	userID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, "", ErrSessionNotFound
	}
	return uint(userID), parts[1], nil
}

// DeleteSession ends the session; the token stops working immediately.
func DeleteSession(sessionID string) error {
	return Client.Del(Ctx, sessionKey(sessionID)).Err()
}

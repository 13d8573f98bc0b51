package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var errNoHostKey = errors.New("no valid host key")

func newHostKey() (key string, hash []byte, err error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", nil, fmt.Errorf("generating host key: %w", err)
	}
	key = hex.EncodeToString(b)
	hash, err = bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hashing host key: %w", err)
	}
	return key, hash, nil
}

// checkHostKey verifies the Bearer token of r against the session's key.
func checkHostKey(r *http.Request, sess *Session) error {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return errNoHostKey
	}
	if err := bcrypt.CompareHashAndPassword(sess.hostKeyHash, []byte(token)); err != nil {
		return errNoHostKey
	}
	return nil
}

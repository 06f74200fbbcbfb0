package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	codeLength = 6
	defaultTTL = 5 * time.Minute
)

// RedisVerifier stores expected codes in redis keyed by payroll record and
// approver, so a code issued to one approver cannot authorize another.
type RedisVerifier struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisVerifier(rdb *redis.Client) *RedisVerifier {
	return &RedisVerifier{rdb: rdb, ttl: defaultTTL}
}

func codeKey(recordID, approverID string) string {
	return fmt.Sprintf("otp:payroll:%s:%s", recordID, approverID)
}

// Issue generates and stores a fresh numeric code for the record/approver
// pair, replacing any previous one. The delivery channel takes it from here.
func (v *RedisVerifier) Issue(ctx context.Context, recordID, approverID string) (string, error) {
	code, err := randomCode(codeLength)
	if err != nil {
		return "", err
	}

	if err := v.rdb.Set(ctx, codeKey(recordID, approverID), code, v.ttl).Err(); err != nil {
		return "", err
	}

	return code, nil
}

// Verify compares in constant time and deletes the code on success so it can
// never authorize a second approval.
func (v *RedisVerifier) Verify(ctx context.Context, recordID, presented, approverID string) (bool, error) {
	key := codeKey(recordID, approverID)

	expected, err := v.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) != 1 {
		return false, nil
	}

	if err := v.rdb.Del(ctx, key).Err(); err != nil {
		return false, err
	}

	return true, nil
}

func randomCode(length int) (string, error) {
	max := big.NewInt(10)
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}
